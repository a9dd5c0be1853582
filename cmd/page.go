package cmd

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"

	v1 "github.com/emrgen/pagebuilder/apis/v1"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var pageCmd = &cobra.Command{
	Use:   "page",
	Short: "page commands",
}

func init() {
	pageCmd.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})
	pageCmd.AddCommand(createPageCmd())
	pageCmd.AddCommand(getPageCmd())
	pageCmd.AddCommand(listPagesCmd())
	pageCmd.AddCommand(pageTreeCmd())
	pageCmd.AddCommand(updatePageCmd())
	pageCmd.AddCommand(deletePageCmd())
	pageCmd.AddCommand(addComponentCmd())
	pageCmd.AddCommand(removeComponentCmd())
	pageCmd.AddCommand(reorderComponentsCmd())
	pageCmd.AddCommand(setPropertiesCmd())
	pageCmd.AddCommand(setSlugCmd())
	pageCmd.AddCommand(checkSlugCmd())
	pageCmd.AddCommand(setParentCmd())
	pageCmd.AddCommand(renderPageCmd())
	pageCmd.AddCommand(listRevisionsCmd())
}

func createPageCmd() *cobra.Command {
	var title string
	var slug string
	var description string
	var parentID string

	var required = []string{"title"}

	command := &cobra.Command{
		Use:     "create",
		Short:   "create a page",
		Long:    `create an empty page; the slug is derived from the title unless given`,
		Example: "pagebuilder page create -t <title> -s <slug> -p <parent-id>",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			client, ok := newClient()
			if !ok {
				return
			}
			defer client.Close()

			ctx, cancel := requestContext()
			defer cancel()

			res, err := client.CreatePage(ctx, &v1.CreatePageRequest{
				Title:       title,
				Slug:        slug,
				Description: description,
				ParentId:    parentID,
			})
			if err != nil {
				logrus.Error(err)
				return
			}

			logrus.Infof("page created with id: %s", res.Page.Id)
			printPages(res.Page)
		},
	}

	command.Flags().StringVarP(&title, "title", "t", "", "page title (required)")
	command.Flags().StringVarP(&slug, "slug", "s", "", "page slug")
	command.Flags().StringVarP(&description, "description", "d", "", "page description")
	command.Flags().StringVarP(&parentID, "parent-id", "p", "", "parent page id")
	command.Flags().SortFlags = false

	return command
}

func getPageCmd() *cobra.Command {
	var pageID string
	var slug string
	var deleted bool

	command := &cobra.Command{
		Use:     "get",
		Short:   "get a page by id or slug",
		Example: "pagebuilder page get -i <page-id>\npagebuilder page get -s <slug>",
		Run: func(cmd *cobra.Command, args []string) {
			if pageID == "" && slug == "" {
				color.Red("missing: --page-id or --slug")
				return
			}

			client, ok := newClient()
			if !ok {
				return
			}
			defer client.Close()

			ctx, cancel := requestContext()
			defer cancel()

			var res *v1.GetPageResponse
			var err error
			if pageID != "" {
				res, err = client.GetPage(ctx, &v1.GetPageRequest{Id: pageID, IncludeDeleted: deleted})
			} else {
				res, err = client.GetPageBySlug(ctx, &v1.GetPageBySlugRequest{Slug: slug})
			}
			if err != nil {
				logrus.Error(err)
				return
			}

			printPages(res.Page)
			printField("Description", res.Page.Description)
			printField("Parent", res.Page.ParentId)
			printComponents(res.Page)
			printJSON("SEO", res.Page.SeoData)
		},
	}

	command.Flags().StringVarP(&pageID, "page-id", "i", "", "page id")
	command.Flags().StringVarP(&slug, "slug", "s", "", "page slug")
	command.Flags().BoolVar(&deleted, "deleted", false, "include deleted pages")
	command.Flags().SortFlags = false

	return command
}

func listPagesCmd() *cobra.Command {
	var parentID string
	var roots bool
	var deleted bool

	command := &cobra.Command{
		Use:   "list",
		Short: "list pages",
		Run: func(cmd *cobra.Command, args []string) {
			client, ok := newClient()
			if !ok {
				return
			}
			defer client.Close()

			ctx, cancel := requestContext()
			defer cancel()

			res, err := client.ListPages(ctx, &v1.ListPagesRequest{
				ParentId:       parentID,
				RootsOnly:      roots,
				IncludeDeleted: deleted,
			})
			if err != nil {
				logrus.Error(err)
				return
			}

			printPages(res.Pages...)
		},
	}

	command.Flags().StringVarP(&parentID, "parent-id", "p", "", "list the children of a page")
	command.Flags().BoolVarP(&roots, "roots", "r", false, "list top level pages only")
	command.Flags().BoolVar(&deleted, "deleted", false, "include deleted pages")
	command.Flags().SortFlags = false

	return command
}

func pageTreeCmd() *cobra.Command {
	var deleted bool

	command := &cobra.Command{
		Use:   "tree",
		Short: "show the page hierarchy",
		Run: func(cmd *cobra.Command, args []string) {
			client, ok := newClient()
			if !ok {
				return
			}
			defer client.Close()

			ctx, cancel := requestContext()
			defer cancel()

			res, err := client.ListPageTree(ctx, &v1.ListPageTreeRequest{IncludeDeleted: deleted})
			if err != nil {
				logrus.Error(err)
				return
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Title", "Path", "ID", "Version"})
			for _, entry := range res.Entries {
				title := strings.Repeat("  ", int(entry.Depth)) + entry.Page.Title
				table.Append([]string{title, entry.Path, entry.Page.Id, strconv.FormatInt(entry.Page.Version, 10)})
			}
			table.Render()
		},
	}

	command.Flags().BoolVar(&deleted, "deleted", false, "include deleted pages")

	return command
}

func updatePageCmd() *cobra.Command {
	var pageID string
	var file string
	var version int64

	var required = []string{"page-id", "file"}

	command := &cobra.Command{
		Use:   "update",
		Short: "replace a page from a json file",
		Long: `Replace the title, slug, description, parent, components and seo data of a page.

The file holds the json body of an UpdatePageRequest. The --version flag wins
over the version in the file; -1 overwrites whatever is stored.`,
		Example: "pagebuilder page update -i <page-id> -f page.json -v 3",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			data, err := os.ReadFile(file)
			if err != nil {
				logrus.Error(err)
				return
			}

			req := &v1.UpdatePageRequest{}
			if err := json.Unmarshal(data, req); err != nil {
				logrus.Errorf("error parsing %s: %v", file, err)
				return
			}
			req.Id = pageID
			if cmd.Flag("version").Changed || req.Version == nil {
				req.Version = versionFlag(version, pageID)
			}

			client, ok := newClient()
			if !ok {
				return
			}
			defer client.Close()

			ctx, cancel := requestContext()
			defer cancel()

			res, err := client.UpdatePage(ctx, req)
			if err != nil {
				logrus.Error(err)
				return
			}

			printPages(res.Page)
		},
	}

	command.Flags().StringVarP(&pageID, "page-id", "i", "", "page id (required)")
	command.Flags().StringVarP(&file, "file", "f", "", "json file with the page (required)")
	command.Flags().Int64VarP(&version, "version", "v", v1.OverwriteVersion, "version the change is based on")
	command.Flags().SortFlags = false

	return command
}

func deletePageCmd() *cobra.Command {
	var pageID string
	var version int64

	var required = []string{"page-id"}

	command := &cobra.Command{
		Use:   "delete",
		Short: "delete a page",
		Long:  `Delete a page. The home page and pages with children cannot be deleted.`,
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			client, ok := newClient()
			if !ok {
				return
			}
			defer client.Close()

			ctx, cancel := requestContext()
			defer cancel()

			_, err := client.DeletePage(ctx, &v1.DeletePageRequest{Id: pageID, Version: versionFlag(version, pageID)})
			if err != nil {
				logrus.Error(err)
				return
			}

			color.Green("page deleted")
		},
	}

	command.Flags().StringVarP(&pageID, "page-id", "i", "", "page id (required)")
	command.Flags().Int64VarP(&version, "version", "v", v1.OverwriteVersion, "expected page version")
	command.Flags().SortFlags = false

	return command
}

func addComponentCmd() *cobra.Command {
	var pageID string
	var typeID string
	var version int64

	var required = []string{"page-id", "type"}

	command := &cobra.Command{
		Use:     "add-component",
		Short:   "append a component to a page",
		Example: "pagebuilder page add-component -i <page-id> -T heroBanner",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			client, ok := newClient()
			if !ok {
				return
			}
			defer client.Close()

			ctx, cancel := requestContext()
			defer cancel()

			res, err := client.AddComponent(ctx, &v1.AddComponentRequest{
				PageId:  pageID,
				TypeId:  typeID,
				Version: versionFlag(version, pageID),
			})
			if err != nil {
				logrus.Error(err)
				return
			}

			logrus.Infof("component added with id: %s", res.Instance.InstanceId)
			printComponents(res.Page)
		},
	}

	command.Flags().StringVarP(&pageID, "page-id", "i", "", "page id (required)")
	command.Flags().StringVarP(&typeID, "type", "T", "", "component type (required)")
	command.Flags().Int64VarP(&version, "version", "v", v1.OverwriteVersion, "expected page version")
	command.Flags().SortFlags = false

	return command
}

func removeComponentCmd() *cobra.Command {
	var pageID string
	var instanceID string
	var version int64

	var required = []string{"page-id", "component-id"}

	command := &cobra.Command{
		Use:   "remove-component",
		Short: "remove a component from a page",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			client, ok := newClient()
			if !ok {
				return
			}
			defer client.Close()

			ctx, cancel := requestContext()
			defer cancel()

			res, err := client.RemoveComponent(ctx, &v1.RemoveComponentRequest{
				PageId:     pageID,
				InstanceId: instanceID,
				Version:    versionFlag(version, pageID),
			})
			if err != nil {
				logrus.Error(err)
				return
			}

			printComponents(res.Page)
		},
	}

	command.Flags().StringVarP(&pageID, "page-id", "i", "", "page id (required)")
	command.Flags().StringVarP(&instanceID, "component-id", "c", "", "component instance id (required)")
	command.Flags().Int64VarP(&version, "version", "v", v1.OverwriteVersion, "expected page version")
	command.Flags().SortFlags = false

	return command
}

func reorderComponentsCmd() *cobra.Command {
	var pageID string
	var instanceIDs []string
	var version int64

	var required = []string{"page-id", "order"}

	command := &cobra.Command{
		Use:     "reorder",
		Short:   "reorder the components of a page",
		Long:    `Reorder the components of a page. The order must name every component exactly once.`,
		Example: "pagebuilder page reorder -i <page-id> -o <id-3>,<id-1>,<id-2>",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			client, ok := newClient()
			if !ok {
				return
			}
			defer client.Close()

			ctx, cancel := requestContext()
			defer cancel()

			res, err := client.ReorderComponents(ctx, &v1.ReorderComponentsRequest{
				PageId:      pageID,
				InstanceIds: instanceIDs,
				Version:     versionFlag(version, pageID),
			})
			if err != nil {
				logrus.Error(err)
				return
			}

			printComponents(res.Page)
		},
	}

	command.Flags().StringVarP(&pageID, "page-id", "i", "", "page id (required)")
	command.Flags().StringSliceVarP(&instanceIDs, "order", "o", nil, "component instance ids in the new order (required)")
	command.Flags().Int64VarP(&version, "version", "v", v1.OverwriteVersion, "expected page version")
	command.Flags().SortFlags = false

	return command
}

func setPropertiesCmd() *cobra.Command {
	var pageID string
	var instanceID string
	var properties string
	var replace bool
	var version int64

	var required = []string{"page-id", "component-id", "props"}

	command := &cobra.Command{
		Use:     "set-props",
		Short:   "edit the properties of a component",
		Long:    `Merge the given json object into the component properties, or replace them with --replace.`,
		Example: `pagebuilder page set-props -i <page-id> -c <instance-id> -p '{"title":"Book a ride"}'`,
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			var props map[string]any
			if err := json.Unmarshal([]byte(properties), &props); err != nil {
				logrus.Errorf("properties must be a json object: %v", err)
				return
			}

			client, ok := newClient()
			if !ok {
				return
			}
			defer client.Close()

			ctx, cancel := requestContext()
			defer cancel()

			res, err := client.SetComponentProperties(ctx, &v1.SetComponentPropertiesRequest{
				PageId:     pageID,
				InstanceId: instanceID,
				Properties: props,
				Replace:    replace,
				Version:    versionFlag(version, pageID),
			})
			if err != nil {
				logrus.Error(err)
				return
			}

			printComponents(res.Page)
		},
	}

	command.Flags().StringVarP(&pageID, "page-id", "i", "", "page id (required)")
	command.Flags().StringVarP(&instanceID, "component-id", "c", "", "component instance id (required)")
	command.Flags().StringVarP(&properties, "props", "p", "", "properties as a json object (required)")
	command.Flags().BoolVar(&replace, "replace", false, "replace instead of merge")
	command.Flags().Int64VarP(&version, "version", "v", v1.OverwriteVersion, "expected page version")
	command.Flags().SortFlags = false

	return command
}

func setSlugCmd() *cobra.Command {
	var pageID string
	var slug string
	var version int64

	var required = []string{"page-id", "slug"}

	command := &cobra.Command{
		Use:   "set-slug",
		Short: "change the slug of a page",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			client, ok := newClient()
			if !ok {
				return
			}
			defer client.Close()

			ctx, cancel := requestContext()
			defer cancel()

			res, err := client.SetSlug(ctx, &v1.SetSlugRequest{PageId: pageID, Slug: slug, Version: versionFlag(version, pageID)})
			if err != nil {
				logrus.Error(err)
				return
			}

			printPages(res.Page)
		},
	}

	command.Flags().StringVarP(&pageID, "page-id", "i", "", "page id (required)")
	command.Flags().StringVarP(&slug, "slug", "s", "", "new slug (required)")
	command.Flags().Int64VarP(&version, "version", "v", v1.OverwriteVersion, "expected page version")
	command.Flags().SortFlags = false

	return command
}

func checkSlugCmd() *cobra.Command {
	var slug string
	var excludeID string

	var required = []string{"slug"}

	command := &cobra.Command{
		Use:   "check-slug",
		Short: "check whether a slug is free",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			client, ok := newClient()
			if !ok {
				return
			}
			defer client.Close()

			ctx, cancel := requestContext()
			defer cancel()

			res, err := client.CheckSlug(ctx, &v1.CheckSlugRequest{Slug: slug, ExcludeId: excludeID})
			if err != nil {
				logrus.Error(err)
				return
			}

			if res.Available {
				color.Green("%s is available", res.Slug)
			} else {
				color.Yellow("%s exists", res.Slug)
			}
		},
	}

	command.Flags().StringVarP(&slug, "slug", "s", "", "slug candidate (required)")
	command.Flags().StringVarP(&excludeID, "exclude", "x", "", "page id to ignore")
	command.Flags().SortFlags = false

	return command
}

func setParentCmd() *cobra.Command {
	var pageID string
	var parentID string
	var version int64

	var required = []string{"page-id"}

	command := &cobra.Command{
		Use:   "set-parent",
		Short: "move a page under another page",
		Long:  `Move a page under another page. An empty --parent-id moves the page to the top level.`,
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			client, ok := newClient()
			if !ok {
				return
			}
			defer client.Close()

			ctx, cancel := requestContext()
			defer cancel()

			res, err := client.SetParent(ctx, &v1.SetParentRequest{PageId: pageID, ParentId: parentID, Version: versionFlag(version, pageID)})
			if err != nil {
				logrus.Error(err)
				return
			}

			printPages(res.Page)
		},
	}

	command.Flags().StringVarP(&pageID, "page-id", "i", "", "page id (required)")
	command.Flags().StringVarP(&parentID, "parent-id", "p", "", "new parent page id")
	command.Flags().Int64VarP(&version, "version", "v", v1.OverwriteVersion, "expected page version")
	command.Flags().SortFlags = false

	return command
}

func renderPageCmd() *cobra.Command {
	var slug string

	command := &cobra.Command{
		Use:     "render",
		Short:   "show the render instructions of a page",
		Long:    `Show the render instructions of a page. Without --slug the home page is rendered.`,
		Example: "pagebuilder page render -s airport-transfers",
		Run: func(cmd *cobra.Command, args []string) {
			client, ok := newClient()
			if !ok {
				return
			}
			defer client.Close()

			ctx, cancel := requestContext()
			defer cancel()

			res, err := client.RenderPage(ctx, &v1.RenderPageRequest{Slug: slug})
			if err != nil {
				logrus.Error(err)
				return
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"#", "Instance", "Type", "Merged properties"})
			for i, in := range res.Instructions {
				props, err := json.Marshal(in.MergedProperties)
				if err != nil {
					logrus.Error(err)
					return
				}
				table.Append([]string{strconv.Itoa(i + 1), in.InstanceId, in.TypeId, string(props)})
			}
			table.Render()

			for _, d := range res.Diagnostics {
				color.Yellow("skipped %s (%s): %s", d.InstanceId, d.TypeId, d.Reason)
			}
			printField("Title", res.Seo.Title)
			printField("Description", res.Seo.Description)
			printField("Canonical", res.Seo.Canonical)
		},
	}

	command.Flags().StringVarP(&slug, "slug", "s", "", "page slug")

	return command
}

func listRevisionsCmd() *cobra.Command {
	var pageID string

	var required = []string{"page-id"}

	command := &cobra.Command{
		Use:   "revisions",
		Short: "list the saved revisions of a page",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			client, ok := newClient()
			if !ok {
				return
			}
			defer client.Close()

			ctx, cancel := requestContext()
			defer cancel()

			res, err := client.ListPageRevisions(ctx, &v1.ListPageRevisionsRequest{PageId: pageID})
			if err != nil {
				logrus.Error(err)
				return
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Version", "Title", "Slug", "Saved"})
			for _, rev := range res.Revisions {
				table.Append([]string{strconv.FormatInt(rev.Version, 10), rev.Title, rev.Slug, rev.CreatedAt.Format("2006-01-02 15:04:05")})
			}
			table.Render()
		},
	}

	command.Flags().StringVarP(&pageID, "page-id", "i", "", "page id (required)")

	return command
}
