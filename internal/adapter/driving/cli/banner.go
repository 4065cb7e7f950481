package cli

import (
	"fmt"

	"github.com/diillson/aws-billing-report-go/pkg/version"
	"github.com/fatih/color"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
         /$$$$$$  /$$      /$$  /$$$$$$        /$$$$$$$  /$$ /$$ /$$ /$$
        /$$__  $$| $$  /$ | $$ /$$__  $$      | $$__  $$|__/| $$| $$|__/
       | $$  \ $$| $$ /$$$| $$| $$  \__/      | $$  \ $$ /$$| $$| $$ /$$ /$$$$$$$   /$$$$$$
       | $$$$$$$$| $$/$$ $$ $$|  $$$$$$       | $$$$$$$ | $$| $$| $$| $$| $$__  $$ /$$__  $$
       | $$__  $$| $$$$_  $$$$ \____  $$      | $$__  $$| $$| $$| $$| $$| $$  \ $$| $$  \ $$
       | $$  | $$| $$$/ \  $$$ /$$  \ $$      | $$  \ $$| $$| $$| $$| $$| $$  | $$| $$  | $$
       | $$  | $$| $$/   \  $$|  $$$$$$/      | $$$$$$$/| $$| $$| $$| $$| $$  | $$|  $$$$$$$
       |__/  |__/|__/     \__/ \______/       |_______/ |__/|__/|__/|__/|__/  |__/ \____  $$
                                                                                   /$$  \ $$
                                                                                  |  $$$$$$/
                                                                                   \______/
       `
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(red(banner))

	// Obtem a string formatada da versão através do pacote version
	fmt.Println(blue(fmt.Sprintf("AWS Billing Report CLI (v%s)", version.FormatVersion())))
}
