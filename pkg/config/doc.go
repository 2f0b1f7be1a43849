// Package config loads environment variables into typed structs.
//
// A .env file in the working directory is read once on first use; variables
// already present in the process environment win. Parsing is done by
// caarlos0/env, so fields are declared with env and envDefault tags:
//
//	type SMTPConfig struct {
//		Host string `env:"SMTP_HOST,required"`
//		Port int    `env:"SMTP_PORT" envDefault:"587"`
//	}
//
//	var cfg SMTPConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// Each struct type is parsed once per process and cached. Later calls for the
// same type copy the cached value.
package config
