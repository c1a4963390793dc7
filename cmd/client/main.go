package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/appybrain-client/internal/client"
	"github.com/MKhiriev/appybrain-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	var app client.Client = client.NewApp(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
