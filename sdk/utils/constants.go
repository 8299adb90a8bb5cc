// SPDX-FileCopyrightText: © 2025 TERN Australia
//
// SPDX-License-Identifier: Apache-2.0

package utils

const (
	IniName            = ".asdc.ini"
	IniPathEnv         = "ASDC_INI_PATH"
	CurrentEnvironment = "current_environment"

	AsdcBaseURL        = "asdc_base_url"
	AsdcAPIPrefix      = "asdc_api_prefix"
	AwsAccessKeyID     = "aws_access_key_id"
	AwsSecretAccessKey = "aws_secret_access_key"
	AwsSessionToken    = "aws_session_token"
	AwsRegion          = "aws_region"
	AwsEndpointURL     = "aws_endpoint_url"
	LogLevel           = "log_level"
	LogFormat          = "log_format"
)
