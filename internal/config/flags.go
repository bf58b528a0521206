// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds a host and port. It implements flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the configuration flags from args into a new config.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-request-timeout server request timeout (e.g. "30s")
//	-server remote todo server address used by the client
//	-mode client adapter mode: remote or local
//	-adapter-timeout client request timeout
//	-store-timeout timeout of a single list store call
//	-resync-interval how often out-of-sync todos are pushed again
//	-metrics-address prometheus listener address
//	-log-file client log file
func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN, jsonConfigPath, remoteAddress, mode, metricsAddress, logFile string
	var requestTimeout, adapterTimeout, storeTimeout, resyncInterval time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&remoteAddress, "server", "", "Todo server address")
	fs.StringVar(&mode, "mode", "", "Client adapter mode: remote or local")
	fs.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Client request timeout")
	fs.DurationVar(&storeTimeout, "store-timeout", 0, "Timeout of a single store call")
	fs.DurationVar(&resyncInterval, "resync-interval", 0, "Resync interval of out-of-sync todos")
	fs.StringVar(&metricsAddress, "metrics-address", "", "Prometheus listener address")
	fs.StringVar(&logFile, "log-file", "", "Client log file")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Storage: Storage{DB: DB{DSN: databaseDSN}},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			Mode:           mode,
			HTTPAddress:    remoteAddress,
			RequestTimeout: adapterTimeout,
		},
		List:         List{StoreTimeout: storeTimeout},
		Workers:      Workers{ResyncInterval: resyncInterval},
		Metrics:      Metrics{Address: metricsAddress},
		Log:          Log{File: logFile},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns host:port, or "" when neither is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port. The host must be "localhost" or an IP address.
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

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
