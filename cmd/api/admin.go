package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xavierca1/agency-site/internal/infra/seed"
	"github.com/xavierca1/agency-site/internal/usecase"
)

func newInitAdminCmd(load loader) *cobra.Command {
	var username, password, email string

	cmd := &cobra.Command{
		Use:   "init-admin",
		Short: "Cria o usuário admin se ele ainda não existe",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := load()
			if err != nil {
				return err
			}
			if username == "" {
				username = cfg.AdminUsername
			}
			if password == "" {
				password = cfg.AdminPassword
			}
			if email == "" {
				email = cfg.AdminEmail
			}

			a := newApp(cfg, logger)
			defer a.Close()

			created, err := usecase.NewAuthUseCase(a.admins, a.hasher, a.tokens).EnsureAdmin(cmd.Context(), username, password, email)
			if err != nil {
				return err
			}
			if created {
				fmt.Fprintf(cmd.OutOrStdout(), "admin %q criado (%s)\n", username, a.selector.Active())
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "admin %q já existe, nada mudou\n", username)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "usuário (padrão: ADMIN_USERNAME)")
	cmd.Flags().StringVar(&password, "password", "", "senha (padrão: ADMIN_PASSWORD)")
	cmd.Flags().StringVar(&email, "email", "", "email (padrão: ADMIN_EMAIL)")
	return cmd
}

func newSeedCmd(load loader) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Carrega serviços, equipe e conteúdo de um arquivo YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := load()
			if err != nil {
				return err
			}

			data, err := seed.LoadFile(file)
			if err != nil {
				return err
			}

			a := newApp(cfg, logger)
			defer a.Close()

			s := &seed.Seeder{Services: a.services, Team: a.team, Content: a.content, Logger: logger}
			res, err := s.Apply(cmd.Context(), data)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seed: %d criados, %d já existiam\n", res.Created, res.Skipped)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "content.yaml", "arquivo YAML de conteúdo")
	return cmd
}
