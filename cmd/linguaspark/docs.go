package main

// General API documentation for swaggo. Regenerate with
// `swag init -g cmd/linguaspark/docs.go -o docs`.
//
// @title           linguaspark API
// @version         1.0
// @description     HTTP API for local neural machine translation.
//
// @contact.name   linguaspark maintainers
//
// @BasePath  /
//
// @schemes http
