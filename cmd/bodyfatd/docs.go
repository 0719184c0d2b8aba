package main

// General API documentation for swaggo. Run `swag init -g cmd/bodyfatd/docs.go` to generate docs.
//
// @title           bodyfatd API
// @version         1.0
// @description     Body fat estimation from anthropometric measurements.
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
