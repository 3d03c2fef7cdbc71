// Package config manages user-level settings stored at ~/.copy-template/config.yaml.
// Values can be overridden with COPY_TEMPLATE_* environment variables, such as
// the templates root and the package manager used to install dependencies.
package config
