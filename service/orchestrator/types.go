package orchestrator

import (
	"github.com/elC0mpa/aws-costpilot/model"
	"github.com/elC0mpa/aws-costpilot/service"
	"github.com/elC0mpa/aws-costpilot/service/catalog"
)

type orchestratorService struct {
	identityService service.IdentityService
	analysisService service.CostAnalysisService
	resolverService service.NameResolutionService
	catalogService  catalog.CatalogService
}

type OrchestratorService interface {
	Orchestrate(model.Flags) error
}
