package main

import (
	"encoding/json"
	"fmt"
	"time"

	"healthpulse/internal/client/api"
	"healthpulse/internal/client/logger"
	"healthpulse/internal/repositories/user"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// app - состояние, общее для всех команд одного запуска.
type app struct {
	v      *viper.Viper
	client *api.Client
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:          "healthpulse",
		Short:        "Command line client of HealthPulse API",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			client, err := setup(cmd, a.v)
			if err != nil {
				return err
			}
			a.client = client
			return nil
		},
	}
	bindGlobalFlags(root, a.v)

	root.AddCommand(
		a.healthCmd(),
		a.registerPatientCmd(),
		a.registerProviderCmd(),
		a.loginCmd(),
		a.meCmd(),
		a.patientsCmd(),
		a.patientCmd(),
		a.vitalsCmd(),
		a.historyCmd(),
		a.providerCmd(),
		a.profileCmd(),
		a.assignCmd(),
		a.assignedCmd(),
	)
	return root
}

// printJSON - выводит результат команды в stdout в виде JSON.
func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output, %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

// parseDate - разбирает дату в формате 2006-01-02. Пустая строка - дата не задана.
func parseDate(s string) (*user.Date, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(user.DateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("date must have format %s, %w", user.DateLayout, err)
	}
	d := user.NewDate(t)
	return &d, nil
}

func printSession(cmd *cobra.Command, s api.Session) error {
	logger.ClientLog.Debug("received token", zap.Int("length", len(s.Token)))
	return printJSON(cmd, map[string]any{"user": s.User, "token": s.Token})
}

func (a *app) healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the server is running",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			msg, err := a.client.Health(cmd.Context())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), msg)
			return err
		},
	}
}

func (a *app) registerPatientCmd() *cobra.Command {
	var (
		reg    user.PatientRegistration
		gender string
		dob    string
	)
	cmd := &cobra.Command{
		Use:   "register-patient",
		Short: "Register a new patient and print the issued token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := parseDate(dob)
			if err != nil {
				return err
			}
			reg.DateOfBirth = d
			reg.Gender = user.Gender(gender)

			s, err := a.client.RegisterPatient(cmd.Context(), reg)
			if err != nil {
				return err
			}
			return printSession(cmd, s)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&reg.FirstName, "first-name", "", "first name")
	flags.StringVar(&reg.LastName, "last-name", "", "last name")
	flags.StringVar(&reg.Email, "email", "", "email")
	flags.StringVar(&reg.Password, "password", "", "password")
	flags.StringVar(&gender, "gender", "", "male, female or other")
	flags.StringVar(&dob, "dob", "", "date of birth, 2006-01-02")
	flags.StringVar(&reg.Phone, "phone", "", "phone")
	flags.StringVar(&reg.Address, "address", "", "address")
	return cmd
}

func (a *app) registerProviderCmd() *cobra.Command {
	var reg user.ProviderRegistration
	cmd := &cobra.Command{
		Use:   "register-provider",
		Short: "Register a new provider and print the issued token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.client.RegisterProvider(cmd.Context(), reg)
			if err != nil {
				return err
			}
			return printSession(cmd, s)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&reg.FirstName, "first-name", "", "first name")
	flags.StringVar(&reg.LastName, "last-name", "", "last name")
	flags.StringVar(&reg.Email, "email", "", "email")
	flags.StringVar(&reg.Password, "password", "", "password")
	return cmd
}

func (a *app) loginCmd() *cobra.Command {
	var login user.Login
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and print the issued token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.client.Login(cmd.Context(), login)
			if err != nil {
				return err
			}
			return printSession(cmd, s)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&login.Email, "email", "", "email")
	flags.StringVar(&login.Password, "password", "", "password")
	flags.StringVar(&login.UserType, "user-type", string(user.KindPatient), "patient or provider")
	return cmd
}

func (a *app) meCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Print the current user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			me, err := a.client.Me(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, me)
		},
	}
}

func (a *app) patientsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "patients",
		Short: "List all patients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := a.client.ListPatients(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, list)
		},
	}
}

func (a *app) patientCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "patient <patient-id>",
		Short: "Print a patient record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.client.GetPatient(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, p)
		},
	}
}

func (a *app) vitalsCmd() *cobra.Command {
	var (
		heartRate     int
		bloodPressure string
		temperature   float64
		oxygenLevel   float64
	)
	cmd := &cobra.Command{
		Use:   "vitals <patient-id>",
		Short: "Update vitals of a patient. Only the given flags are sent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var upd user.VitalsUpdate
			flags := cmd.Flags()
			if flags.Changed("heart-rate") {
				upd.HeartRate = &heartRate
			}
			if flags.Changed("blood-pressure") {
				upd.BloodPressure = &bloodPressure
			}
			if flags.Changed("temperature") {
				upd.Temperature = &temperature
			}
			if flags.Changed("oxygen") {
				upd.OxygenLevel = &oxygenLevel
			}

			p, err := a.client.UpdateVitals(cmd.Context(), args[0], upd)
			if err != nil {
				return err
			}
			return printJSON(cmd, p)
		},
	}
	flags := cmd.Flags()
	flags.IntVar(&heartRate, "heart-rate", 0, "heart rate, 0-300")
	flags.StringVar(&bloodPressure, "blood-pressure", "", "blood pressure, e.g. 120/80")
	flags.Float64Var(&temperature, "temperature", 0, "body temperature")
	flags.Float64Var(&oxygenLevel, "oxygen", 0, "oxygen level, 0-100")
	return cmd
}

func (a *app) historyCmd() *cobra.Command {
	var (
		entry     user.MedicalHistoryInput
		diagnosed string
	)
	cmd := &cobra.Command{
		Use:   "history <patient-id>",
		Short: "Add an entry to the medical history of a patient",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDate(diagnosed)
			if err != nil {
				return err
			}
			entry.DiagnosedDate = d

			p, err := a.client.AddMedicalHistory(cmd.Context(), args[0], entry)
			if err != nil {
				return err
			}
			return printJSON(cmd, p)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&entry.Condition, "condition", "", "diagnosed condition")
	flags.StringVar(&diagnosed, "diagnosed", "", "date of diagnosis, 2006-01-02")
	flags.StringVar(&entry.Notes, "notes", "", "notes")
	return cmd
}

func (a *app) providerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "provider <provider-id>",
		Short: "Print a provider profile with contacts of assigned patients",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.client.GetProvider(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, p)
		},
	}
}

func (a *app) profileCmd() *cobra.Command {
	var (
		specialization string
		license        string
		years          int
		hospital       string
		bio            string
	)
	cmd := &cobra.Command{
		Use:   "profile <provider-id>",
		Short: "Update the professional profile of a provider. Only the given flags are sent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var upd user.ProviderUpdate
			flags := cmd.Flags()
			if flags.Changed("specialization") {
				upd.Specialization = &specialization
			}
			if flags.Changed("license") {
				upd.LicenseNumber = &license
			}
			if flags.Changed("years") {
				upd.YearsOfExperience = &years
			}
			if flags.Changed("hospital") {
				upd.HospitalAffiliation = &hospital
			}
			if flags.Changed("bio") {
				upd.Bio = &bio
			}

			p, err := a.client.UpdateProvider(cmd.Context(), args[0], upd)
			if err != nil {
				return err
			}
			return printJSON(cmd, p)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&specialization, "specialization", "", "specialization")
	flags.StringVar(&license, "license", "", "license number")
	flags.IntVar(&years, "years", 0, "years of experience")
	flags.StringVar(&hospital, "hospital", "", "hospital affiliation")
	flags.StringVar(&bio, "bio", "", "bio")
	return cmd
}

func (a *app) assignCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "assign <provider-id> <patient-id>",
		Short: "Assign a patient to a provider",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.client.AssignPatient(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return printJSON(cmd, p)
		},
	}
}

func (a *app) assignedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "assigned <provider-id>",
		Short: "List patients assigned to a provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.client.AssignedPatients(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, list)
		},
	}
}
