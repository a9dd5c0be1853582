package service

import (
	"context"
	"testing"

	v1 "github.com/emrgen/pagebuilder/apis/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestSiteService(t *testing.T) {
	ctx := context.TODO()
	f := newFixture(t, nil)

	empty, err := f.sites.GetSiteTheme(ctx, &v1.GetSiteThemeRequest{})
	require.NoError(t, err)
	assert.Empty(t, empty.Theme.SelectedHomePage)

	home := f.create(t, "Home", "")

	_, err = f.sites.UpdateSiteTheme(ctx, &v1.UpdateSiteThemeRequest{Theme: &v1.SiteTheme{PrimaryColor: "yellow"}})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = f.sites.UpdateSiteTheme(ctx, &v1.UpdateSiteThemeRequest{Theme: &v1.SiteTheme{BaseUrl: "citycabs"}})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = f.sites.UpdateSiteTheme(ctx, &v1.UpdateSiteThemeRequest{Theme: &v1.SiteTheme{SelectedHomePage: "missing"}})
	assert.Equal(t, codes.NotFound, status.Code(err))

	res, err := f.sites.UpdateSiteTheme(ctx, &v1.UpdateSiteThemeRequest{Theme: &v1.SiteTheme{
		SelectedHomePage: home.Id,
		SiteName:         "City Cabs",
		PrimaryColor:     "#ffc107",
	}})
	require.NoError(t, err)
	assert.Equal(t, home.Id, res.Theme.SelectedHomePage)

	got, err := f.sites.GetSiteTheme(ctx, &v1.GetSiteThemeRequest{})
	require.NoError(t, err)
	assert.Equal(t, "City Cabs", got.Theme.SiteName)
	assert.Equal(t, "#ffc107", got.Theme.PrimaryColor)

	p, err := f.pages.GetPage(ctx, &v1.GetPageRequest{Id: home.Id})
	require.NoError(t, err)
	assert.True(t, p.Page.IsHomePage)
}
