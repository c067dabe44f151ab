// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DefaultTokenDuration          = 720 * time.Hour
	DefaultBcryptCost             = 10
	DefaultVersion                = "1.0.0"
	DefaultHTTPAddress            = "0.0.0.0:3000"
	DefaultGRPCAddress            = "0.0.0.0:3001"
	DefaultRequestTimeout         = 30 * time.Second
	DefaultAdapterAddress         = "http://localhost:3000"
	DefaultSyncInterval           = 5 * time.Minute
	DefaultMutationUploadInterval = 2 * time.Second
	DefaultLocalStorePath         = "hymusic.db"
	DefaultLogLevel               = "info"
	DefaultLogFile                = "hymusic-client.log"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "hymusic",
			TokenDuration: DefaultTokenDuration,
			BcryptCost:    DefaultBcryptCost,
			Version:       DefaultVersion,
		},
		Storage: Storage{
			Local: Local{Path: DefaultLocalStorePath},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			GRPCAddress:    DefaultGRPCAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Workers: Workers{
			SyncInterval:           DefaultSyncInterval,
			MutationUploadInterval: DefaultMutationUploadInterval,
		},
		Log: Log{
			Level: DefaultLogLevel,
			File:  DefaultLogFile,
		},
	}
}
