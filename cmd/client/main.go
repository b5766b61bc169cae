// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/MKhiriev/macro-marketplace/internal/client"
	"github.com/MKhiriev/macro-marketplace/internal/config"
	"github.com/MKhiriev/macro-marketplace/internal/logger"
	"github.com/MKhiriev/macro-marketplace/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("macro-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("macro-client", cfg.App.LogFile)
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	var app client.Client
	app, err = client.NewApp(cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
