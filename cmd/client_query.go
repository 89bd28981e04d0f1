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

	"github.com/hyperledger/firefly-fabquery/pkg/apitypes"
	"github.com/spf13/cobra"
)

func clientQueryCommand(clientFactory clientFactory) *cobra.Command {
	var channel, chaincode, function string
	var args []string
	clientQueryCmd := &cobra.Command{
		Use:   "query",
		Short: "Evaluate a read-only chaincode function",
		Long:  "Prints the response envelope, and exits non-zero when the envelope reports a failure",
		RunE: func(_ *cobra.Command, _ []string) error {
			client, err := clientFactory()
			if err != nil {
				return err
			}
			if function == "" {
				return fmt.Errorf("function flag must be set")
			}
			env, err := client.Query(context.Background(), &apitypes.InvocationRequest{
				ChannelName:  channel,
				ContractName: chaincode,
				FunctionName: function,
				Args:         args,
				Identity:     identityName,
				Organization: org,
			})
			if err != nil {
				return err
			}
			printJSON(env)
			if env.Error != nil {
				return fmt.Errorf("%s", *env.Error)
			}
			return nil
		},
	}
	clientQueryCmd.Flags().StringVarP(&channel, "channel", "c", "", "The channel name")
	clientQueryCmd.Flags().StringVarP(&chaincode, "chaincode", "n", "", "The chaincode name")
	clientQueryCmd.Flags().StringVarP(&function, "function", "", "", "The chaincode function to evaluate")
	clientQueryCmd.Flags().StringArrayVarP(&args, "arg", "a", []string{}, "An argument for the function (repeatable)")
	clientQueryCmd.Flags().StringVarP(&identityName, "identity", "i", "", "The wallet identity to evaluate as")
	return clientQueryCmd
}
