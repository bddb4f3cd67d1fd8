package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/elC0mpa/aws-costpilot/service/analyzer"
	awsconfig "github.com/elC0mpa/aws-costpilot/service/aws/config"
	awscostexplorer "github.com/elC0mpa/aws-costpilot/service/aws/costexplorer"
	awssts "github.com/elC0mpa/aws-costpilot/service/aws/sts"
	"github.com/elC0mpa/aws-costpilot/service/catalog"
	"github.com/elC0mpa/aws-costpilot/service/flag"
	"github.com/elC0mpa/aws-costpilot/service/orchestrator"
	"github.com/elC0mpa/aws-costpilot/service/resolver"
	"github.com/elC0mpa/aws-costpilot/utils"
)

func main() {
	utils.DrawBanner()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	flagService := flag.NewService()
	flags, err := flagService.GetParsedFlags()
	if err != nil {
		panic(err)
	}

	utils.StartSpinner()

	cfgService := awsconfig.NewService()
	awsCfg, err := cfgService.GetAWSCfg(context.Background(), flags.Region, flags.Profile)
	if err != nil {
		panic(err)
	}

	costService := awscostexplorer.NewService(awsCfg, logger)
	stsService := awssts.NewService(awsCfg)

	catalogService := catalog.NewService(
		catalog.NewFileStore(catalogCachePath()),
		catalog.DefaultTTL,
		costService,
		resolver.AliasCanonicalNames(),
		logger,
	)
	resolverService := resolver.NewService(catalogService, logger)
	analyzerService := analyzer.NewService(costService, logger)

	orchestratorService := orchestrator.NewService(stsService, analyzerService, resolverService, catalogService)

	err = orchestratorService.Orchestrate(flags)
	if err != nil {
		utils.StopSpinner()
		panic(err)
	}
}

func catalogCachePath() string {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}
	return filepath.Join(cacheDir, "aws-costpilot", catalog.DefaultCacheFile)
}
