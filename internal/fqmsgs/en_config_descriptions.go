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
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"golang.org/x/text/language"
)

var ffc = func(key, translation, fieldType string) i18n.ConfigMessageKey {
	return i18n.FFC(language.AmericanEnglish, key, translation, fieldType)
}

//revive:disable
var (
	ConfigAPIDefaultRequestTimeout      = ffc("config.api.defaultRequestTimeout", "Default server-side request timeout for API calls", i18n.TimeDurationType)
	ConfigAPIMaxRequestTimeout          = ffc("config.api.maxRequestTimeout", "Maximum server-side request timeout a caller can request with a Request-Timeout header", i18n.TimeDurationType)
	ConfigAPIAddress                    = ffc("config.api.address", "Listener address for API", i18n.StringType)
	ConfigAPIPort                       = ffc("config.api.port", "Listener port for API", i18n.IntType)
	ConfigAPIPublicURL                  = ffc("config.api.publicURL", "External address callers should access API over", i18n.StringType)
	ConfigAPIReadTimeout                = ffc("config.api.readTimeout", "The maximum time to wait when reading from an HTTP connection", i18n.TimeDurationType)
	ConfigAPIWriteTimeout               = ffc("config.api.writeTimeout", "The maximum time to wait when writing to a HTTP connection", i18n.TimeDurationType)
	ConfigAPIShutdownTimeout            = ffc("config.api.shutdownTimeout", "The maximum amount of time to wait for any open HTTP requests to finish before shutting down the HTTP server", i18n.TimeDurationType)
	ConfigAPIRateLimitEnabled           = ffc("config.api.rateLimit.enabled", "Limit the rate of queries accepted for each organization", i18n.BooleanType)
	ConfigAPIRateLimitRequestsPerSecond = ffc("config.api.rateLimit.requestsPerSecond", "Sustained number of queries per second allowed for each organization", i18n.FloatType)
	ConfigAPIRateLimitBurst             = ffc("config.api.rateLimit.burst", "Number of queries allowed in a burst above the sustained rate for each organization", i18n.IntType)

	ConfigMonitoringEnabled     = ffc("config.monitoring.enabled", "Enables the monitoring APIs", i18n.BooleanType)
	ConfigMonitoringMetricsPath = ffc("config.monitoring.metricsPath", "The path from which to serve the Prometheus metrics", i18n.StringType)
	ConfigMonitoringAddress     = ffc("config.monitoring.address", "Listener address for the monitoring server", i18n.StringType)
	ConfigMonitoringPort        = ffc("config.monitoring.port", "Listener port for the monitoring server", i18n.IntType)

	ConfigFabricAsLocalhost    = ffc("config.fabric.asLocalhost", "Map the host of every endpoint returned by service discovery to localhost, for networks running in local containers", i18n.BooleanType)
	ConfigFabricConnectTimeout = ffc("config.fabric.connectTimeout", "Timeout applied to the gateway when connecting to peers and evaluating transactions", i18n.TimeDurationType)

	ConfigConnectionsCacheEnabled = ffc("config.connections.cache.enabled", "Reuse gateway connections across queries for the same organization and identity", i18n.BooleanType)
	ConfigConnectionsCacheSize    = ffc("config.connections.cache.size", "Maximum number of gateway connections to keep open", i18n.IntType)
	ConfigConnectionsCacheTTL     = ffc("config.connections.cache.ttl", "Time after which an idle cached gateway connection is closed", i18n.TimeDurationType)

	ConfigRegistrationEnabled          = ffc("config.registration.enabled", "Register and enroll identities with the Fabric CA when a query uses an identity that is missing from the wallet", i18n.BooleanType)
	ConfigRegistrationAsAdmin          = ffc("config.registration.asAdmin", "Register missing identities with the admin role rather than the client role", i18n.BooleanType)
	ConfigRegistrationRetryAfterEnroll = ffc("config.registration.retryAfterEnroll", "Continue the original query once a missing identity has been enrolled, rather than returning a not-enrolled error", i18n.BooleanType)
	ConfigRegistrationAffiliation      = ffc("config.registration.affiliationTemplate", "Go template for the CA affiliation of newly registered identities", i18n.GoTemplateType)
	ConfigRegistrationCAName           = ffc("config.registration.caName", "The certificate authority from the connection profile to register with. Defaults to the organization's first CA", i18n.StringType)
	ConfigRegistrationKeystorePath     = ffc("config.registration.keystorePath", "Overrides the keystore path of the SDK crypto suite, from which enrolled private keys are read", i18n.StringType)

	ConfigPersistenceType               = ffc("config.persistence.type", "The type of persistence to use for wallet identities", "Enum: `filesystem`, `leveldb`, `postgres`")
	ConfigPersistenceLevelDBPath        = ffc("config.persistence.leveldb.path", "The path for the LevelDB persistence directory", i18n.StringType)
	ConfigPersistenceLevelDBMaxHandles  = ffc("config.persistence.leveldb.maxHandles", "The maximum number of cached file handles LevelDB should keep open", i18n.IntType)
	ConfigPersistenceLevelDBSyncWrites  = ffc("config.persistence.leveldb.syncWrites", "Whether to synchronously perform writes to the storage", i18n.BooleanType)
	ConfigPersistencePostgresDataSource = ffc("config.persistence.postgres.url", "The PostgreSQL connection URL", i18n.StringType)

	ConfigProfilesDirectory      = ffc("config.profiles.directory", "Directory against which relative profile and wallet paths are resolved", i18n.StringType)
	ConfigProfilesPathTemplate   = ffc("config.profiles.pathTemplate", "Go template for the connection profile file of an organization", i18n.GoTemplateType)
	ConfigProfilesWalletTemplate = ffc("config.profiles.walletTemplate", "Go template for the wallet directory of an organization", i18n.GoTemplateType)
	ConfigProfilesMSPIDTemplate  = ffc("config.profiles.mspIdTemplate", "Go template for the MSP ID of an organization", i18n.GoTemplateType)
	ConfigProfilesOrgsName       = ffc("config.profiles.orgs[].name", "The organization these overrides apply to", i18n.StringType)
	ConfigProfilesOrgsProfile    = ffc("config.profiles.orgs[].profile", "Path to the connection profile of the organization", i18n.StringType)
	ConfigProfilesOrgsWallet     = ffc("config.profiles.orgs[].wallet", "Path to the wallet directory of the organization", i18n.StringType)
	ConfigProfilesOrgsMSPID      = ffc("config.profiles.orgs[].mspId", "MSP ID of the organization", i18n.StringType)

	ConfigContractsFunctionsName  = ffc("config.contracts.functions[].name", "Name of a contract query function", i18n.StringType)
	ConfigContractsFunctionsArity = ffc("config.contracts.functions[].arity", "Number of positional arguments the function takes", i18n.IntType)

	ConfigClientURL = ffc("config.fabquery_client.url", "The URL of the fabquery server the client commands connect to", i18n.StringType)
)
