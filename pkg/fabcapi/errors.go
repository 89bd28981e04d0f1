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

package fabcapi

import (
	"context"
	"errors"
	"strings"

	"github.com/hyperledger/firefly-common/pkg/i18n"
)

type reasonError struct {
	i18n.FFError
	reason ErrorReason
}

func (re *reasonError) Reason() ErrorReason {
	return re.reason
}

// WithReason tags an i18n error with a reason, which ClassifyError then returns for it. The
// message and HTTP status of the error are unchanged. Other errors are returned as they are.
func WithReason(err error, reason ErrorReason) error {
	if ffe, ok := err.(i18n.FFError); ok {
		return &reasonError{FFError: ffe, reason: reason}
	}
	return err
}

var contractNotFoundMarkers = []string{
	"make sure the chaincode",
	"chaincode definition for",
	"could not find chaincode",
	"cannot retrieve package for chaincode",
	"channel does not exist",
	"channel not found",
	"not found in channel",
}

var authorizationMarkers = []string{
	"access denied",
	"creator org unknown",
	"failed deserializing proposal creator",
	"failed to verify signature",
	"signature set did not satisfy policy",
	"permission denied",
	"unauthorized",
	"is not authorized",
}

var connectionMarkers = []string{
	"connection refused",
	"failed to connect",
	"failed to create new connection",
	"no such host",
	"context deadline exceeded",
	"context canceled",
	"deadline exceeded",
	"unavailable",
	"discovery service",
	"failed to get endorsing peers",
	"no peers",
	"timeout",
}

// ClassifyError maps a failure from the Fabric SDK onto an ErrorReason.
//
// The SDK reports most failures as wrapped gRPC status text, so the checks are made against the
// lower-cased message. Context cancellation is checked first, as the SDK does not always wrap it.
func ClassifyError(err error) ErrorReason {
	if err == nil {
		return ErrorReasonUnderlying
	}
	var re *reasonError
	if errors.As(err, &re) {
		return re.reason
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return ErrorReasonConnectionFailed
	}
	msg := strings.ToLower(err.Error())
	switch {
	case containsAny(msg, contractNotFoundMarkers):
		return ErrorReasonContractNotFound
	case containsAny(msg, authorizationMarkers):
		return ErrorReasonAuthorizationFailed
	case containsAny(msg, connectionMarkers):
		return ErrorReasonConnectionFailed
	default:
		return ErrorReasonUnderlying
	}
}

func containsAny(msg string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(msg, m) {
			return true
		}
	}
	return false
}
