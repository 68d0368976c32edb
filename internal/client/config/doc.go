// Package config loads runtime configuration for the interview-prep client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables PREP_*, with an optional .env file (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the profile server
//	-t int      request timeout (seconds)
//	-i int      online status check interval (seconds)
//	-d string   data directory
//	-m int      max avatar size (bytes)
//
// # JSON schema
//
//	{
//	  "server_base_url": "http://127.0.0.1:8080",
//	  "request_timeout": "10s",
//	  "online_check_interval": "3s",
//	  "data_dir": "data",
//	  "max_image_size": 5242880
//	}
package config
