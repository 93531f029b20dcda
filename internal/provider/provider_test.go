// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package provider

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"terraform-provider-idrac-redfish/internal/idrac"

	"github.com/hashicorp/terraform-plugin-framework/providerserver"
	"github.com/hashicorp/terraform-plugin-go/tfprotov6"
	"github.com/joho/godotenv"
)

var (
	creds TestingServerCredentials
)

type TestingServerCredentials struct {
	Username string
	Password string
	Endpoint string
	Insecure bool
}

// testAccProtoV6ProviderFactories are used to instantiate a provider during
// acceptance testing. The factory function will be invoked for every Terraform
// CLI command executed to create a provider server to which the CLI can
// reattach.
var testAccProtoV6ProviderFactories = map[string]func() (tfprotov6.ProviderServer, error){
	"idrac-redfish": providerserver.NewProtocol6WithError(New("test")()),
}

func testAccPreCheck(t *testing.T) {
	if creds.Endpoint == "" {
		t.Skip("TF_TESTING_ENDPOINT not set, skipping acceptance test")
	}
}

// testAccClient builds a session against the testing BMC for pre-checks and
// preparation steps outside of Terraform.
func testAccClient(creds TestingServerCredentials) *idrac.Client {
	return idrac.NewClient(idrac.Config{
		Endpoint:    creds.Endpoint,
		Username:    creds.Username,
		Password:    creds.Password,
		SslInsecure: true,
		Timeout:     30 * time.Second,
	})
}

// testAccEnsurePowerState drives the testing host into the wanted power
// state before a test case starts.
func testAccEnsurePowerState(t *testing.T, wantedState string) {
	ctx := context.Background()
	client := testAccClient(creds)

	system, err := client.GetSystem(ctx)
	if err != nil {
		t.Fatalf("Failed to read system resource: %s", err.Error())
	}
	if system.StringValue("PowerState") == wantedState {
		return
	}

	action := "On"
	if wantedState == "Off" {
		action = "ForceOff"
	}
	if _, err := client.ResetSystem(ctx, action); err != nil {
		t.Fatalf("Failed to request power state change: %s", err.Error())
	}
	if err := client.WaitForPowerState(ctx, wantedState, 120*time.Second); err != nil {
		t.Fatalf("Failed to change power state within given timeout: %s", err.Error())
	}
}

func init() {
	err := godotenv.Load("redfish_test.env")
	if err != nil {
		fmt.Println(err.Error())
	}

	creds = TestingServerCredentials{
		Username: os.Getenv("TF_TESTING_USERNAME"),
		Password: os.Getenv("TF_TESTING_PASSWORD"),
		Endpoint: os.Getenv("TF_TESTING_ENDPOINT"),
		Insecure: false,
	}
}
