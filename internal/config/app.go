package config

import "os"

// Addr returns the address the HTTP server binds to.
func Addr() string {
	if addr, ok := os.LookupEnv("APP_ADDR"); ok {
		return addr
	}
	return ":8080"
}

func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}
