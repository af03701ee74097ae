/*
 * Copyright (c) 2026, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package provider

import (
	"github.com/wso2/customer-resolution-service/internal/resolution/service"
	"github.com/wso2/customer-resolution-service/internal/system/config"
)

// ResolutionProviderInterface defines the interface for the resolution
// provider.
type ResolutionProviderInterface interface {
	GetResolutionService(cfg config.ResolutionConfig) service.ResolutionServiceInterface
}

// ResolutionProvider is the default implementation of the
// ResolutionProviderInterface.
type ResolutionProvider struct{}

// NewResolutionProvider creates a new instance of ResolutionProvider.
func NewResolutionProvider() ResolutionProviderInterface {

	return &ResolutionProvider{}
}

// GetResolutionService returns the resolution service instance.
func (rp *ResolutionProvider) GetResolutionService(cfg config.ResolutionConfig) service.ResolutionServiceInterface {

	return service.GetResolutionService(cfg)
}
