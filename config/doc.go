// Package config loads pipeline definitions from YAML files and the
// environment and assembles runnable pipelines from named component
// factories.
package config
