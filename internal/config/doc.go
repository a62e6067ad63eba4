// Package config manages user-level settings stored at ~/.layerkit/config.yaml.
// Values can be overridden by LAYERKIT_* environment variables, which may in
// turn come from a .env file in the working directory. Settings control how the
// scaffold builder guards and fills the trees it creates.
package config
