// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the client flags from args.
//
// Flags:
//
//	-a backend address (e.g. http://localhost:5000)
//	-request-timeout outbound request timeout (e.g. "15s")
//	-d SQLite snapshot database path
//	-downloads downloads directory
//	-preview-address preview server address in format [host]:[port]
//	-refresh-interval catalog refresh interval (e.g. "5m")
//	-per-page default page size
//	-log-file log file path
//	-c/-config json file path with configs
//	-env-file dotenv file path
func parseFlags(args []string) (*StructuredConfig, error) {
	var previewAddress NetAddress
	var backendAddress string
	var requestTimeout time.Duration
	var databaseDSN string
	var downloadsDir string
	var refreshInterval time.Duration
	var perPage int
	var logFile string
	var jsonConfigPath string
	var envFile string

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&backendAddress, "a", "", "Backend address")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	fs.StringVar(&databaseDSN, "d", "", "Snapshot database path")
	fs.StringVar(&downloadsDir, "downloads", "", "Downloads directory")
	fs.Var(&previewAddress, "preview-address", "Preview server address host:port")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Catalog refresh interval (e.g., 5m)")
	fs.IntVar(&perPage, "per-page", 0, "Default page size")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&envFile, "env-file", "", "Dotenv file path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App:     App{LogFile: logFile},
		Adapter: Adapter{HTTPAddress: backendAddress, RequestTimeout: requestTimeout},
		Storage: Storage{
			DB:        DB{DSN: databaseDSN},
			Downloads: Downloads{Dir: downloadsDir},
		},
		Server:       Server{HTTPAddress: previewAddress.String()},
		Workers:      Workers{RefreshInterval: refreshInterval},
		Catalog:      Catalog{PerPage: perPage},
		JSONFilePath: jsonConfigPath,
		EnvFile:      envFile,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
