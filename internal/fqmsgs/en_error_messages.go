// Copyright © 2024 Kaleido, Inc.
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fqmsgs

import (
	"net/http"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"golang.org/x/text/language"
)

var ffe = func(key, translation string, statusHint ...int) i18n.ErrorMessageKey {
	return i18n.FFE(language.AmericanEnglish, key, translation, statusHint...)
}

//revive:disable
var (
	MsgConfigParamNotSet            = ffe("FF21100", "Configuration parameter '%s' must be set")
	MsgInvalidRequestErr            = ffe("FF21101", "Invalid '%s' request: %s", http.StatusBadRequest)
	MsgMissingOrganization          = ffe("FF21102", "An organization is required", http.StatusBadRequest)
	MsgProfileNotFound              = ffe("FF21103", "No connection profile found for organization '%s' at '%s'", http.StatusNotFound)
	MsgProfileInvalid               = ffe("FF21104", "Connection profile for organization '%s' is invalid: %s")
	MsgBadProfileTemplate           = ffe("FF21105", "Invalid Go template '%s': %s")
	MsgUnknownFunction              = ffe("FF21106", "Unknown function '%s'", http.StatusBadRequest)
	MsgArityMismatch                = ffe("FF21107", "Function '%s' requires %d arguments, but %d were supplied", http.StatusBadRequest)
	MsgInvalidFunctionDefinition    = ffe("FF21108", "Invalid function definition at index %d: name=%q arity=%d")
	MsgResultNotJSON                = ffe("FF21109", "Result of '%s' is not valid JSON")
	MsgRegistrationDisabled         = ffe("FF21110", "Identity registration is disabled")
	MsgIdentityNotEnrolled          = ffe("FF21111", "Identity '%s' for organization '%s' is not enrolled in the wallet. Registration has been requested", http.StatusNotFound)
	MsgIdentityNotFound             = ffe("FF21112", "Identity '%s' not found for organization '%s'", http.StatusNotFound)
	MsgRegistrationFailed           = ffe("FF21113", "Failed to register identity '%s' for organization '%s': %s")
	MsgEnrollmentFailed             = ffe("FF21114", "Failed to enroll identity '%s' for organization '%s': %s")
	MsgKeystoreReadFailed           = ffe("FF21115", "Failed to read private key for identity '%s' from keystore '%s'")
	MsgIdentityExists               = ffe("FF21116", "Identity '%s' already exists for organization '%s'", http.StatusConflict)
	MsgMissingName                  = ffe("FF21117", "Name is required", http.StatusBadRequest)
	MsgInvalidWalletEntry           = ffe("FF21118", "Wallet entry '%s' is invalid: %s")
	MsgUnsupportedIdentityType      = ffe("FF21119", "Unsupported identity type '%s'")
	MsgUnknownPersistence           = ffe("FF21120", "Unknown persistence type '%s'")
	MsgPersistenceInitFail          = ffe("FF21121", "Failed to initialize '%s' persistence: %s")
	MsgLevelDBPathMissing           = ffe("FF21122", "Path must be supplied for LevelDB persistence")
	MsgPersistenceMarshalFailed     = ffe("FF21123", "JSON serialization failed while writing to persistence")
	MsgPersistenceUnmarshalFailed   = ffe("FF21124", "JSON parsing failed while reading from persistence")
	MsgPersistenceReadFailed        = ffe("FF21125", "Failed to read key '%s' from persistence")
	MsgPersistenceWriteFailed       = ffe("FF21126", "Failed to write key '%s' to persistence")
	MsgPersistenceDeleteFailed      = ffe("FF21127", "Failed to delete key '%s' from persistence")
	MsgPersistenceInitFailed        = ffe("FF21128", "Failed to initialize persistence at path '%s'")
	MsgFilesystemWalletPathMissing  = ffe("FF21129", "A wallet path must be resolvable for organization '%s'")
	MsgRateLimitExceeded            = ffe("FF21130", "Query rate limit exceeded for organization '%s'", http.StatusTooManyRequests)
	MsgGatewayConnectFailed         = ffe("FF21131", "Failed to connect gateway for identity '%s' of organization '%s': %s")
	MsgChannelNotFound              = ffe("FF21132", "Failed to access channel '%s': %s")
	MsgContractNotFound             = ffe("FF21133", "Contract '%s' not found on channel '%s'")
	MsgEvaluateInterrupted          = ffe("FF21134", "Evaluation of '%s' interrupted: %s")
	MsgInvalidArgsParam             = ffe("FF21135", "The 'args' parameter must be a JSON array of strings: %s", http.StatusBadRequest)
	MsgInvalidLimit                 = ffe("FF21136", "Invalid limit string '%s': %s", http.StatusBadRequest)
	MsgNotReady                     = ffe("FF21137", "Query dispatcher is not ready: %s", http.StatusServiceUnavailable)
	MsgConnectionCacheInitFailed    = ffe("FF21139", "Failed to initialize connection cache: %s")
	MsgRegistrarInitFailed          = ffe("FF21140", "Failed to initialize registrar for organization '%s': %s")
	MsgInvalidPrivateKeyPEM         = ffe("FF21141", "The private key for identity '%s' is not valid PEM")
	MsgUnexpectedClientResponse     = ffe("FF21142", "Unexpected response from server [%d]: %s")
	MsgInvalidOutputType            = ffe("FF21143", "Invalid output type: %s")
	MsgInvalidOrganization          = ffe("FF21144", "Invalid organization '%s'", http.StatusBadRequest)
)
