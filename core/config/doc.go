// Package config loads typed configuration structs from environment
// variables. A .env file in the working directory is read on first use.
//
//	type ServerConfig struct {
//		Addr string `env:"SERVER_ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// Each struct type is parsed once per process; later Load calls for the
// same type return the cached value. Different types are cached
// independently, so packages can own their own config structs.
package config
