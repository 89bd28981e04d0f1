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

package fabquery

import (
	"encoding/json"
	"net/http"

	"github.com/ghodss/yaml"
	"github.com/gorilla/mux"
	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/ffapi"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/hyperledger/firefly-fabquery/internal/fqconfig"
)

func (m *manager) handlerFactory() *ffapi.HandlerFactory {
	return &ffapi.HandlerFactory{
		DefaultRequestTimeout: config.GetDuration(fqconfig.APIDefaultRequestTimeout),
		MaxTimeout:            config.GetDuration(fqconfig.APIMaxRequestTimeout),
	}
}

func (m *manager) router() *mux.Router {
	mux := mux.NewRouter()
	hf := m.handlerFactory()
	routes := m.routes()
	for _, r := range routes {
		mux.Path(r.Path).Methods(r.Method).Handler(hf.RouteHandler(r))
	}
	mux.Path("/api").Methods(http.MethodGet).Handler(http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		url := req.URL.String() + "/swagger.yaml"
		handler := hf.APIWrapper(hf.SwaggerUIHandler(url))
		handler(res, req)
	}))
	mux.Path("/api/swagger.yaml").Methods(http.MethodGet).Handler(swaggerHandler(routes, "application/x-yaml", yaml.Marshal))
	mux.Path("/api/swagger.json").Methods(http.MethodGet).Handler(swaggerHandler(routes, "application/json", func(v interface{}) ([]byte, error) {
		return json.Marshal(v)
	}))

	mux.NotFoundHandler = hf.APIWrapper(func(res http.ResponseWriter, req *http.Request) (status int, err error) {
		return 404, i18n.NewError(req.Context(), i18n.Msg404NotFound)
	})
	return mux
}

func swaggerHandler(routes []*ffapi.Route, contentType string, marshal func(interface{}) ([]byte, error)) http.Handler {
	return http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		u := *req.URL
		u.Path = ""
		u.RawQuery = ""
		swaggerGen := ffapi.NewSwaggerGen(&ffapi.Options{
			BaseURL: u.String(),
			Title:   "Fabric Query Dispatcher",
			Version: "1.0",
		})
		doc := swaggerGen.Generate(req.Context(), routes)
		b, err := marshal(&doc)
		if err != nil {
			log.L(req.Context()).Errorf("Failed to serialize swagger document: %s", err)
			res.WriteHeader(http.StatusInternalServerError)
			return
		}
		res.Header().Add("Content-Type", contentType)
		_, _ = res.Write(b)
	})
}

func (m *manager) monitoringRouter() (*mux.Router, error) {
	mux := mux.NewRouter()
	hf := m.handlerFactory()
	for _, r := range m.monitoringRoutes() {
		mux.Path(r.Path).Methods(r.Method).Handler(hf.RouteHandler(r))
	}
	h, err := m.metrics.HTTPHandler()
	if err != nil {
		return nil, err
	}
	mux.Path(m.metricsPath).Methods(http.MethodGet).Handler(h)
	mux.NotFoundHandler = hf.APIWrapper(func(res http.ResponseWriter, req *http.Request) (status int, err error) {
		return 404, i18n.NewError(req.Context(), i18n.Msg404NotFound)
	})
	return mux, nil
}

func (m *manager) runAPIServer() {
	m.apiServer.ServeHTTP(m.ctx)
}

func (m *manager) runMonitoringServer() {
	m.monitoringServer.ServeHTTP(m.ctx)
}
