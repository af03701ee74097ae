/*
 * Copyright (c) 2026, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package errors

const errorPrefix = "CRS-"

var (
	// Server error codes

	ErrLoadConfig = ErrorMessage{
		Code:    errorPrefix + "15001",
		Message: "Error while loading the configuration file.",
	}

	ErrReadSourceFile = ErrorMessage{
		Code:    errorPrefix + "15002",
		Message: "Error while reading source file.",
	}

	ErrUnmarshalSourceFile = ErrorMessage{
		Code:    errorPrefix + "15003",
		Message: "Error while un-marshalling source file.",
	}

	ErrWriteProfiles = ErrorMessage{
		Code:    errorPrefix + "15004",
		Message: "Error while writing resolved profiles.",
	}

	// Client error codes

	ErrInvalidSourceEnvelope = ErrorMessage{
		Code:        errorPrefix + "11001",
		Message:     "Invalid source file.",
		Description: "The source file does not carry the expected envelope fields.",
	}

	ErrUnknownSourceTag = ErrorMessage{
		Code:        errorPrefix + "11002",
		Message:     "Unknown source tag.",
		Description: "Source tag must be one of invoicing, calendar or email.",
	}

	ErrInvalidThreshold = ErrorMessage{
		Code:        errorPrefix + "11003",
		Message:     "Invalid resolution configuration.",
		Description: "Similarity thresholds and confidence values must lie in [0,1].",
	}
)
