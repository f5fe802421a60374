package main

// General API documentation for swaggo. Regenerate internal/httpapi/docs with:
//
//	swag init -g cmd/lmnode/docs.go -o internal/httpapi/docs
//
// @title           lmnode API
// @version         1.0
// @description     HTTP API for running an LM Studio chat node over batches of items.
//
// @contact.name   lmnode maintainers
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
