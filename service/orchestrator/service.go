package orchestrator

import (
	"context"

	"github.com/elC0mpa/aws-costpilot/model"
	"github.com/elC0mpa/aws-costpilot/service"
	"github.com/elC0mpa/aws-costpilot/service/catalog"
	"github.com/elC0mpa/aws-costpilot/utils"
)

func NewService(identityService service.IdentityService, analysisService service.CostAnalysisService, resolverService service.NameResolutionService, catalogService catalog.CatalogService) *orchestratorService {
	return &orchestratorService{
		identityService: identityService,
		analysisService: analysisService,
		resolverService: resolverService,
		catalogService:  catalogService,
	}
}

func (s *orchestratorService) Orchestrate(flags model.Flags) error {
	if flags.RefreshCatalog {
		if err := s.catalogService.Invalidate(); err != nil {
			return err
		}
	}

	if flags.Resolve != "" {
		return s.resolveWorkflow(flags.Resolve)
	}

	if flags.Tag != "" {
		return s.tagWorkflow(flags)
	}

	if flags.TagOverview {
		return s.tagOverviewWorkflow(flags)
	}

	if flags.Trend {
		return s.trendWorkflow(flags.Months)
	}

	return s.defaultWorkflow(flags)
}

func (s *orchestratorService) defaultWorkflow(flags model.Flags) error {
	window, err := utils.ValidateDateWindow(flags.StartDate, flags.EndDate)
	if err != nil {
		return err
	}

	summaries, err := s.analysisService.TopServices(context.Background(), window, flags.Top)
	if err != nil {
		return err
	}

	accountInfo, err := s.identityService.GetAccountInfo(context.Background())
	if err != nil {
		return err
	}

	utils.StopSpinner()

	utils.DrawCostTable(accountInfo.AccountID, window, summaries)
	return nil
}

func (s *orchestratorService) tagWorkflow(flags model.Flags) error {
	window, err := utils.ValidateDateWindow(flags.StartDate, flags.EndDate)
	if err != nil {
		return err
	}

	summary, err := s.analysisService.CostByTag(context.Background(), flags.Tag, window)
	if err != nil {
		return err
	}

	accountInfo, err := s.identityService.GetAccountInfo(context.Background())
	if err != nil {
		return err
	}

	utils.StopSpinner()

	utils.DrawTagTable(accountInfo.AccountID, summary)
	return nil
}

func (s *orchestratorService) tagOverviewWorkflow(flags model.Flags) error {
	window, err := utils.ValidateDateWindow(flags.StartDate, flags.EndDate)
	if err != nil {
		return err
	}

	summaries, err := s.analysisService.TagOverview(context.Background(), window)
	if err != nil {
		return err
	}

	accountInfo, err := s.identityService.GetAccountInfo(context.Background())
	if err != nil {
		return err
	}

	utils.StopSpinner()

	utils.DrawTagOverview(accountInfo.AccountID, summaries)
	return nil
}

func (s *orchestratorService) trendWorkflow(months int) error {
	trend, err := s.analysisService.Trend(context.Background(), months)
	if err != nil {
		return err
	}

	anomalies, err := s.analysisService.Anomalies(context.Background(), 0, months)
	if err != nil {
		return err
	}

	accountInfo, err := s.identityService.GetAccountInfo(context.Background())
	if err != nil {
		return err
	}

	utils.StopSpinner()

	utils.DrawTrendChart(accountInfo.AccountID, trend)
	utils.DrawAnomalyTable(anomalies)
	return nil
}

func (s *orchestratorService) resolveWorkflow(input string) error {
	result, err := s.resolverService.Resolve(context.Background(), input)
	if err != nil {
		return err
	}

	utils.StopSpinner()

	utils.DrawResolutionTable(result)
	return nil
}
