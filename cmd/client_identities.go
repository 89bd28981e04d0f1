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

package cmd

import (
	"github.com/spf13/cobra"
)

var identityAfter string
var identityLimit int
var registerAsAdmin bool

func clientIdentitiesCommand(clientFactory clientFactory) *cobra.Command {
	clientIdentitiesCmd := &cobra.Command{
		Use:   "identities <subcommand>",
		Short: "Manage the wallet identities of an organization",
	}
	clientIdentitiesCmd.PersistentFlags().StringVarP(&identityName, "name", "", "", "The name of the identity")
	clientIdentitiesCmd.AddCommand(clientIdentitiesListCommand(clientFactory))
	clientIdentitiesCmd.AddCommand(clientIdentitiesGetCommand(clientFactory))
	clientIdentitiesCmd.AddCommand(clientIdentitiesDeleteCommand(clientFactory))
	clientIdentitiesCmd.AddCommand(clientIdentitiesRegisterCommand(clientFactory))
	return clientIdentitiesCmd
}
