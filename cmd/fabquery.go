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
	"os"
	"os/signal"
	"syscall"

	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/hyperledger/firefly-fabquery/pkg/fabquery"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var sigs = make(chan os.Signal, 1)

var rootCmd = &cobra.Command{
	Use:   "fabquery",
	Short: "Hyperledger Fabric chaincode query dispatcher",
	Long:  ``,
	RunE: func(_ *cobra.Command, _ []string) error {
		return run()
	},
}

var cfgFile string

func init() {
	// Defaults must be in place before the client command reads the API address
	fabquery.InitConfig()
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "f", "", "config file")
	rootCmd.AddCommand(versionCommand())
	rootCmd.AddCommand(ClientCommand())
	rootCmd.AddCommand(MigrateCommand(initConfig))
}

func Execute() error {
	return rootCmd.Execute()
}

func initConfig() error {
	fabquery.InitConfig()
	return config.ReadConfig("fabquery", cfgFile)
}

func run() error {

	err := initConfig()

	// Setup logging after reading config (even if failed), to output header correctly
	ctx, cancelCtx := context.WithCancel(context.Background())
	defer cancelCtx()
	ctx = log.WithLogger(ctx, logrus.WithField("pid", fmt.Sprintf("%d", os.Getpid())))
	ctx = log.WithLogger(ctx, logrus.WithField("prefix", "fabquery"))

	config.SetupLogging(ctx)

	// Deferred error return from reading config
	if err != nil {
		cancelCtx()
		return i18n.WrapError(ctx, err, i18n.MsgConfigFailed)
	}

	// Setup signal handling to cancel the context, which shuts down the API Server
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	manager, err := fabquery.NewManager(ctx)
	if err != nil {
		return err
	}
	if err = manager.Start(); err != nil {
		return err
	}
	sig := <-sigs
	log.L(ctx).Infof("Shutting down due to %s", sig.String())
	cancelCtx()
	return manager.WaitStop()
}
