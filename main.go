/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/killallgit/comment-search-api/cmd"

// @title           Comment Search API
// @version         1.0.0
// @description     Searches and filters comments served by an upstream comment API
// @contact.name    API Support
// @contact.url     https://github.com/killallgit/comment-search-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
