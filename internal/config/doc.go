// Package config loads and validates lazynav.json configuration.
//
// Configuration is optional: LoadOrDefault returns built-in defaults
// when no file exists, so a bare `lazynav serve` works out of the box.
// The file covers the listen address, the upstream API used by route
// data fetchers, the artificial view module load latency, and logging.
//
// Example lazynav.json:
//
//	{
//	  "server": { "host": "localhost", "port": 3000 },
//	  "api": { "baseUrl": "https://jsonplaceholder.typicode.com" },
//	  "modules": { "delay": "250ms" },
//	  "log": { "level": "debug", "format": "text" }
//	}
package config
