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
	"fmt"

	"github.com/spf13/cobra"
)

func clientIdentitiesRegisterCommand(clientFactory clientFactory) *cobra.Command {
	clientIdentitiesRegisterCmd := &cobra.Command{
		Use:   "register",
		Short: "Register and enroll an identity with the organization's CA",
		RunE: func(_ *cobra.Command, _ []string) error {
			client, err := clientFactory()
			if err != nil {
				return err
			}
			if identityName == "" {
				return fmt.Errorf("name flag must be set")
			}
			id, err := client.RegisterIdentity(context.Background(), org, identityName, registerAsAdmin)
			if err != nil {
				return err
			}
			printJSON(id)
			return nil
		},
	}
	clientIdentitiesRegisterCmd.Flags().BoolVarP(&registerAsAdmin, "admin", "", false, "Register using the CA admin enrollment")
	return clientIdentitiesRegisterCmd
}
