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

package fqconfig

import (
	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/httpserver"
	"github.com/spf13/viper"
)

var ffc = config.AddRootKey

var (
	APIDefaultRequestTimeout      = ffc("api.defaultRequestTimeout")
	APIMaxRequestTimeout          = ffc("api.maxRequestTimeout")
	APIRateLimitEnabled           = ffc("api.rateLimit.enabled")
	APIRateLimitRequestsPerSecond = ffc("api.rateLimit.requestsPerSecond")
	APIRateLimitBurst             = ffc("api.rateLimit.burst")
	MonitoringEnabled             = ffc("monitoring.enabled")
	MonitoringMetricsPath         = ffc("monitoring.metricsPath")
	FabricAsLocalhost             = ffc("fabric.asLocalhost")
	FabricConnectTimeout          = ffc("fabric.connectTimeout")
	ConnectionsCacheEnabled       = ffc("connections.cache.enabled")
	ConnectionsCacheSize          = ffc("connections.cache.size")
	ConnectionsCacheTTL           = ffc("connections.cache.ttl")
	RegistrationEnabled           = ffc("registration.enabled")
	RegistrationAsAdmin           = ffc("registration.asAdmin")
	RegistrationRetryAfterEnroll  = ffc("registration.retryAfterEnroll")
	RegistrationAffiliation       = ffc("registration.affiliationTemplate")
	RegistrationCAName            = ffc("registration.caName")
	RegistrationKeystorePath      = ffc("registration.keystorePath")
	PersistenceType               = ffc("persistence.type")
	PersistenceLevelDBPath        = ffc("persistence.leveldb.path")
	PersistenceLevelDBMaxHandles  = ffc("persistence.leveldb.maxHandles")
	PersistenceLevelDBSyncWrites  = ffc("persistence.leveldb.syncWrites")
	ProfilesDirectory             = ffc("profiles.directory")
	ProfilesPathTemplate          = ffc("profiles.pathTemplate")
	ProfilesWalletTemplate        = ffc("profiles.walletTemplate")
	ProfilesMSPIDTemplate         = ffc("profiles.mspIdTemplate")
)

// Keys within each entry of the profiles.orgs and contracts.functions arrays
const (
	OrgName        = "name"
	OrgProfile     = "profile"
	OrgWallet      = "wallet"
	OrgMSPID       = "mspId"
	FunctionName   = "name"
	FunctionArity  = "arity"
	ProfilesOrgs   = "orgs"
	ContractsFuncs = "functions"
)

var APIConfig config.Section

var CorsConfig config.Section

var MonitoringConfig config.Section

var PostgresSection config.Section

var ProfilesConfig config.Section

var ProfilesOrgsConfig config.ArraySection

var ContractsConfig config.Section

var ContractsFunctionsConfig config.ArraySection

func setDefaults() {
	viper.SetDefault(string(APIDefaultRequestTimeout), "30s")
	viper.SetDefault(string(APIMaxRequestTimeout), "10m")
	viper.SetDefault(string(APIRateLimitEnabled), false)
	viper.SetDefault(string(APIRateLimitRequestsPerSecond), 50)
	viper.SetDefault(string(APIRateLimitBurst), 100)
	viper.SetDefault(string(MonitoringEnabled), false)
	viper.SetDefault(string(MonitoringMetricsPath), "/metrics")
	viper.SetDefault(string(FabricAsLocalhost), true)
	viper.SetDefault(string(FabricConnectTimeout), "30s")
	viper.SetDefault(string(ConnectionsCacheEnabled), false)
	viper.SetDefault(string(ConnectionsCacheSize), 100)
	viper.SetDefault(string(ConnectionsCacheTTL), "5m")
	viper.SetDefault(string(RegistrationEnabled), true)
	viper.SetDefault(string(RegistrationAsAdmin), true)
	viper.SetDefault(string(RegistrationRetryAfterEnroll), false)
	viper.SetDefault(string(RegistrationAffiliation), "{{ .Organization | lower }}.department1")
	viper.SetDefault(string(PersistenceType), "filesystem")
	viper.SetDefault(string(PersistenceLevelDBMaxHandles), 100)
	viper.SetDefault(string(PersistenceLevelDBSyncWrites), false)
	viper.SetDefault(string(ProfilesDirectory), ".")
	viper.SetDefault(string(ProfilesPathTemplate), "connection-{{ .Organization | lower }}.json")
	viper.SetDefault(string(ProfilesWalletTemplate), "wallet/{{ .Organization | lower }}")
	viper.SetDefault(string(ProfilesMSPIDTemplate), "{{ .Organization | title }}MSP")
}

func Reset() {
	config.RootConfigReset(setDefaults)

	APIConfig = config.RootSection("api")
	httpserver.InitHTTPConfig(APIConfig, 5102)

	CorsConfig = config.RootSection("cors")
	httpserver.InitCORSConfig(CorsConfig)

	MonitoringConfig = config.RootSection("monitoring")
	httpserver.InitHTTPConfig(MonitoringConfig, 6000)

	PostgresSection = config.RootSection("persistence").SubSection("postgres")

	ProfilesConfig = config.RootSection("profiles")
	ProfilesOrgsConfig = ProfilesConfig.SubArray(ProfilesOrgs)
	ProfilesOrgsConfig.AddKnownKey(OrgName)
	ProfilesOrgsConfig.AddKnownKey(OrgProfile)
	ProfilesOrgsConfig.AddKnownKey(OrgWallet)
	ProfilesOrgsConfig.AddKnownKey(OrgMSPID)

	ContractsConfig = config.RootSection("contracts")
	ContractsFunctionsConfig = ContractsConfig.SubArray(ContractsFuncs)
	ContractsFunctionsConfig.AddKnownKey(FunctionName)
	ContractsFunctionsConfig.AddKnownKey(FunctionArity)
}
