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
	"context"

	"github.com/spf13/cobra"
)

func clientIdentitiesListCommand(clientFactory clientFactory) *cobra.Command {
	clientIdentitiesListCmd := &cobra.Command{
		Use:   "list",
		Short: "List the identities in an organization's wallet",
		RunE: func(_ *cobra.Command, _ []string) error {
			client, err := clientFactory()
			if err != nil {
				return err
			}
			ids, err := client.ListIdentities(context.Background(), org, identityAfter, identityLimit)
			if err != nil {
				return err
			}
			printJSON(ids)
			return nil
		},
	}
	clientIdentitiesListCmd.Flags().StringVarP(&identityAfter, "after", "", "", "Only list identities with names sorting after this one")
	clientIdentitiesListCmd.Flags().IntVarP(&identityLimit, "limit", "", 0, "The maximum number of identities to list")
	return clientIdentitiesListCmd
}
