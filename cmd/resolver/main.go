/*
 * Copyright (c) 2026, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// resolver loads the exported invoicing, calendar and email records and
// resolves them into unified customer profiles. All file I/O lives here, at
// the boundary; the resolution core is a pure in-memory computation.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/cobra"

	profilemodel "github.com/wso2/customer-resolution-service/internal/profile/model"
	"github.com/wso2/customer-resolution-service/internal/records/loader"
	recordmodel "github.com/wso2/customer-resolution-service/internal/records/model"
	"github.com/wso2/customer-resolution-service/internal/report"
	"github.com/wso2/customer-resolution-service/internal/resolution/provider"
	"github.com/wso2/customer-resolution-service/internal/system/config"
	"github.com/wso2/customer-resolution-service/internal/system/errors"
	"github.com/wso2/customer-resolution-service/internal/system/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "resolver",
		Short:         "Resolve customer records from invoicing, calendar and email into unified profiles",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd())
	return root
}

func newRunCmd() *cobra.Command {
	var (
		invoicesPath string
		calendarPath string
		emailsPath   string
		configPath   string
		outPath      string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one resolution pass over the three source exports",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(invoicesPath, calendarPath, emailsPath, configPath, outPath)
		},
	}

	cmd.Flags().StringVar(&invoicesPath, "invoices", "", "path to the invoicing ledger export")
	cmd.Flags().StringVar(&calendarPath, "calendar", "", "path to the booking calendar export")
	cmd.Flags().StringVar(&emailsPath, "emails", "", "path to the email inbox export")
	cmd.Flags().StringVar(&configPath, "config", "", "optional path to the yaml configuration file")
	cmd.Flags().StringVar(&outPath, "out", "", "optional path to write the resolved profiles as JSON")
	_ = cmd.MarkFlagRequired("invoices")
	_ = cmd.MarkFlagRequired("calendar")
	_ = cmd.MarkFlagRequired("emails")
	return cmd
}

func run(invoicesPath, calendarPath, emailsPath, configPath, outPath string) error {
	_ = godotenv.Load()

	cfg := config.DefaultConfig()
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if err := log.Init(cfg.Log.LogLevel); err != nil {
		return err
	}
	logger := log.GetLogger()

	invoices, err := loader.LoadInvoices(invoicesPath)
	if err != nil {
		return err
	}
	bookings, err := loader.LoadBookings(calendarPath)
	if err != nil {
		return err
	}
	emails, err := loader.LoadEmails(emailsPath)
	if err != nil {
		return err
	}
	logger.Info("Loaded source records",
		log.Int("invoices", len(invoices)),
		log.Int("bookings", len(bookings)),
		log.Int("emails", len(emails)))

	resolutionService := provider.NewResolutionProvider().GetResolutionService(cfg.Resolution)
	profiles := resolutionService.Resolve([][]recordmodel.RawRecord{invoices, bookings, emails})

	summary := report.Build(profiles)
	fmt.Println(summary.Render())

	if outPath != "" {
		if err := writeProfiles(outPath, profiles); err != nil {
			return err
		}
		logger.Info("Wrote resolved profiles", log.String("path", outPath))
	}
	return nil
}

func writeProfiles(path string, profiles []*profilemodel.CustomerProfile) error {
	data, err := json.MarshalIndent(profiles, "", "  ")
	if err != nil {
		return errors.NewServerError(errors.ErrWriteProfiles, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.NewServerError(errors.ErrWriteProfiles,
			pkgerrors.Wrapf(err, "writing %s", path))
	}
	return nil
}
