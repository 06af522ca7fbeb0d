package main

import "github.com/jochebedafua/icd-diagnosis-api/cmd"

// @title ICD Diagnosis API
// @version 1.0
// @description Reference data service for ICD diagnosis code catalogs across coding-standard versions

// @contact.name API Support
// @contact.url http://github.com/jochebedafua/icd-diagnosis-api

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8020
// @BasePath /
// @schemes http https

func main() {
	cmd.Execute()
}
