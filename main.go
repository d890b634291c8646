/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/killallgit/rofind-api/cmd"

// @title           RoFind API
// @version         1.0
// @description     Game search orchestration API: paginated search, facets, categories and trending games.
// @contact.name    API Support
// @contact.url     https://github.com/killallgit/rofind-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
