package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/kusaridev/skoot/pkg/domain/model"
)

func TestGithubUser(t *testing.T) {
	user := model.NewGithubUser("mlieberman85")
	gt.Value(t, user.Kind).Equal(model.GithubUserKindUser)
	gt.Value(t, user.Name).Equal("mlieberman85")
	gt.Value(t, user.IsOrganization()).Equal(false)

	org := model.NewGithubOrg("kusaridev")
	gt.Value(t, org.Kind).Equal(model.GithubUserKindOrganization)
	gt.Value(t, org.IsOrganization()).Equal(true)
}

func TestGithubRepoParams_FullURL(t *testing.T) {
	params := model.GithubRepoParams{
		Name:         "skootrs",
		Description:  "d",
		Organization: model.NewGithubOrg("kusaridev"),
	}

	gt.Value(t, params.Provider()).Equal(model.ProviderGithub)
	gt.Value(t, params.FullURL()).Equal("https://github.com/kusaridev/skootrs")
}

func TestInitializedGithubRepo_FullURL(t *testing.T) {
	repo := model.InitializedGithubRepo{
		Name:         "skootrs",
		Organization: model.NewGithubUser("mlieberman85"),
	}

	gt.Value(t, repo.Provider()).Equal(model.ProviderGithub)
	gt.Value(t, repo.FullURL()).Equal("https://github.com/mlieberman85/skootrs")
}
