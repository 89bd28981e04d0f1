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

package dispatcher

import (
	"context"
	"sort"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/hyperledger/firefly-fabquery/internal/fqconfig"
	"github.com/hyperledger/firefly-fabquery/internal/fqmsgs"
	"github.com/hyperledger/firefly-fabquery/pkg/apitypes"
)

// The read-only functions of the references chaincode, by the number of positional
// arguments each takes
var defaultFunctions = map[int][]string{
	0: {
		"getAllPendingReferences",
	},
	1: {
		"getHistoryForAsset",
		"restictedMethod",
		"getProfile",
		"queryRecord",
		"getStatistics",
		"getQuestionnaireByCategory",
		"getAllQuestionnaire",
		"getHistoryForRecord",
		"getReferencesCountByContractorId",
		"getMyReferences",
		"getEmployerProfile",
		"getEmployerStatistics",
		"getHistoryForAcceptedRequestFromEmployer",
	},
	2: {
		"getAllContractorReferencesByStatus",
		"getReferencesListByCompanyName",
		"getReferencesViewedHistory",
		"getAllEmployerRequestsByStatus",
	},
	3: {
		"getContractorProfileForEmployer",
	},
}

// FunctionTable maps a function name to the number of arguments it is evaluated with
type FunctionTable map[string]int

// NewFunctionTable builds the default table, then applies each entry of the
// contracts.functions config array as an addition or an override
func NewFunctionTable(ctx context.Context) (FunctionTable, error) {
	ft := make(FunctionTable)
	for arity, names := range defaultFunctions {
		for _, name := range names {
			ft[name] = arity
		}
	}
	for i := 0; i < fqconfig.ContractsFunctionsConfig.ArraySize(); i++ {
		fnConf := fqconfig.ContractsFunctionsConfig.ArrayEntry(i)
		name := fnConf.GetString(fqconfig.FunctionName)
		arity := fnConf.GetInt(fqconfig.FunctionArity)
		if name == "" || arity < 0 {
			return nil, i18n.NewError(ctx, fqmsgs.MsgInvalidFunctionDefinition, i, name, arity)
		}
		if existing, ok := ft[name]; ok && existing != arity {
			log.L(ctx).Infof("Function '%s' arity overridden from %d to %d", name, existing, arity)
		}
		ft[name] = arity
	}
	return ft, nil
}

// Args returns exactly the prefix of args the function is evaluated with. Extra
// arguments are dropped, and too few is an error.
func (ft FunctionTable) Args(ctx context.Context, fn string, args []string) ([]string, error) {
	arity, ok := ft[fn]
	if !ok {
		return nil, i18n.NewError(ctx, fqmsgs.MsgUnknownFunction, fn)
	}
	if len(args) < arity {
		return nil, i18n.NewError(ctx, fqmsgs.MsgArityMismatch, fn, arity, len(args))
	}
	return args[:arity], nil
}

// Descriptors lists the table sorted by name
func (ft FunctionTable) Descriptors() []*apitypes.FunctionDescriptor {
	fds := make([]*apitypes.FunctionDescriptor, 0, len(ft))
	for name, arity := range ft {
		fds = append(fds, &apitypes.FunctionDescriptor{Name: name, Arity: arity})
	}
	sort.Slice(fds, func(i, j int) bool { return fds[i].Name < fds[j].Name })
	return fds
}
