package cli

import (
	"context"
	"log/slog"

	"github.com/fatih/color"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/kusaridev/skoot/pkg/cli/config"
	"github.com/kusaridev/skoot/pkg/domain/model"
	gitinfra "github.com/kusaridev/skoot/pkg/infra/git"
	githubinfra "github.com/kusaridev/skoot/pkg/infra/github"
	"github.com/kusaridev/skoot/pkg/usecase"
)

func cmdRepo() *cli.Command {
	return &cli.Command{
		Name:  "repo",
		Usage: "Manage project source repositories",
		Commands: []*cli.Command{
			cmdRepoCreate(),
		},
	}
}

func cmdRepoCreate() *cli.Command {
	var (
		githubCfg   config.GitHub
		name        string
		description string
		org         string
		user        string
		clonePath   string
	)

	flags := append(githubCfg.Flags(),
		&cli.StringFlag{
			Name:        "name",
			Usage:       "Repository name",
			Required:    true,
			Destination: &name,
		},
		&cli.StringFlag{
			Name:        "description",
			Usage:       "Repository description",
			Destination: &description,
		},
		&cli.StringFlag{
			Name:        "org",
			Usage:       "Owning GitHub organization",
			Destination: &org,
		},
		&cli.StringFlag{
			Name:        "user",
			Usage:       "Owning GitHub user account",
			Destination: &user,
		},
		&cli.StringFlag{
			Name:        "clone-path",
			Usage:       "Directory to clone the new repository into (skipped when empty)",
			Destination: &clonePath,
		},
	)

	return &cli.Command{
		Name:  "create",
		Usage: "Create a repository on GitHub and optionally clone it",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			var owner model.GithubUser
			switch {
			case org != "" && user != "":
				return goerr.New("--org and --user are mutually exclusive")
			case org != "":
				owner = model.NewGithubOrg(org)
			case user != "":
				owner = model.NewGithubUser(user)
			default:
				return goerr.New("either --org or --user is required")
			}

			githubClient, err := githubinfra.NewClient(githubCfg.Token)
			if err != nil {
				return err
			}

			repoSvc := usecase.NewRepo(githubClient, gitinfra.NewClient())

			params := model.GithubRepoParams{
				Name:         name,
				Description:  description,
				Organization: owner,
			}

			initialized, err := repoSvc.Initialize(ctx, params)
			if err != nil {
				return err
			}

			color.Green("Created %s", params.FullURL())

			if clonePath == "" {
				return nil
			}

			source, err := repoSvc.CloneLocal(ctx, initialized, clonePath)
			if err != nil {
				return err
			}

			logger.Info("Repository cloned", slog.String("path", source.Path))
			color.Green("Cloned into %s", source.Path)

			return nil
		},
	}
}
