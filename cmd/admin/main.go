package main

import (
	"context"
	"hotel/config"
	"hotel/infras/jwt"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/auth/model/dto"
	"hotel/shared/logger"
	"hotel/shared/validator"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	adminRepository "hotel/internal/domains/admin/repository"
	authService "hotel/internal/domains/auth/service"
	guestRepository "hotel/internal/domains/guest/repository"
)

func main() {
	logger.InitLogger()

	app := &cli.App{
		Name:  "admin",
		Usage: "manage hotel administrator accounts",
		Commands: []*cli.Command{
			{
				Name:  "create",
				Usage: "create an administrator with a bcrypt hashed password",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "username", Aliases: []string{"u"}, Required: true},
					&cli.StringFlag{Name: "password", Aliases: []string{"p"}, EnvVars: []string{"ADMIN_PASSWORD"}, Required: true},
				},
				Action: create,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("Admin command failed")
	}
}

func create(c *cli.Context) error {
	cfg := config.Get()

	logger.SetLogLevel(cfg)

	req := dto.CreateAdminRequest{
		Username: c.String("username"),
		Password: c.String("password"),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		return err //nolint:wrapcheck
	}

	db := postgres.New(cfg)
	ot := otel.New(cfg)

	service := authService.New(guestRepository.New(db, ot), adminRepository.New(db, ot), ot, jwt.New(cfg))

	id, err := service.CreateAdmin(context.Background(), req)
	if err != nil {
		return err //nolint:wrapcheck
	}

	log.Info().Int64("adminId", id).Str("username", req.Username).Msg("Administrator created")

	return nil
}
