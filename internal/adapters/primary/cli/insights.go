package cli

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"aivault-portal/internal/core/services"
)

func (a *App) addMetadataCommands() {
	meta := a.app.Command("metadata", "Manage AI-extracted metadata")

	cmd := meta.Command("list", "List metadata records")
	listBiz := businessFlag(cmd)
	cmd.Action(func(*kingpin.ParseContext) error {
		id, err := a.owner(*listBiz)
		if err != nil {
			return err
		}
		return showPage(a, "metadata", func(ctx context.Context) (*services.MetadataPage, error) {
			return a.pages.Metadata(ctx, id)
		})
	})

	cmd = meta.Command("generate", "Generate metadata from the business profile")
	genBiz := businessFlag(cmd)
	cmd.Action(func(*kingpin.ParseContext) error {
		id, err := a.owner(*genBiz)
		if err != nil {
			return err
		}
		generated, err := a.api.GenerateAiMetadata(a.ctx, id)
		if err != nil {
			return err
		}
		return a.print(generated)
	})

	cmd = meta.Command("rm", "Delete a metadata record")
	rmID := cmd.Arg("id", "Metadata id").Required().String()
	cmd.Action(func(*kingpin.ParseContext) error {
		if err := a.requireUser(); err != nil {
			return err
		}
		id, err := parseID(*rmID)
		if err != nil {
			return err
		}
		if err := a.api.DeleteAiMetadata(a.ctx, id); err != nil {
			return err
		}
		return a.say("deleted metadata %s", id)
	})
}

func (a *App) addJSONLDCommands() {
	jsonld := a.app.Command("jsonld", "Manage JSON-LD structured data feeds")

	cmd := jsonld.Command("list", "List feeds with local validation results")
	listBiz := businessFlag(cmd)
	cmd.Action(func(*kingpin.ParseContext) error {
		id, err := a.owner(*listBiz)
		if err != nil {
			return err
		}
		return showPage(a, "jsonld", func(ctx context.Context) (*services.JSONLDPage, error) {
			return a.pages.JSONLD(ctx, id)
		})
	})

	cmd = jsonld.Command("generate", "Generate a feed from the business profile")
	genBiz := businessFlag(cmd)
	cmd.Action(func(*kingpin.ParseContext) error {
		id, err := a.owner(*genBiz)
		if err != nil {
			return err
		}
		feed, err := a.api.GenerateJSONLD(a.ctx, id)
		if err != nil {
			return err
		}
		return a.print(feed)
	})

	cmd = jsonld.Command("show", "Show a feed")
	showID := cmd.Arg("id", "Feed id").Required().String()
	cmd.Action(func(*kingpin.ParseContext) error {
		if err := a.requireUser(); err != nil {
			return err
		}
		id, err := parseID(*showID)
		if err != nil {
			return err
		}
		feed, err := a.api.GetJSONLD(a.ctx, id)
		if err != nil {
			return err
		}
		return a.print(feed)
	})

	cmd = jsonld.Command("validate", "Check a feed against the supported schema.org types")
	validateID := cmd.Arg("id", "Feed id").Required().String()
	cmd.Action(func(*kingpin.ParseContext) error {
		if err := a.requireUser(); err != nil {
			return err
		}
		id, err := parseID(*validateID)
		if err != nil {
			return err
		}
		feed, err := a.api.GetJSONLD(a.ctx, id)
		if err != nil {
			return err
		}
		view := services.FeedView{JSONLDFeed: *feed, Problems: a.validator.Validate(*feed)}
		if err := a.print(view); err != nil {
			return err
		}
		if n := len(view.Problems); n > 0 {
			return fmt.Errorf("feed %s has %d problem(s)", id, n)
		}
		return nil
	})

	cmd = jsonld.Command("rm", "Delete a feed")
	rmID := cmd.Arg("id", "Feed id").Required().String()
	cmd.Action(func(*kingpin.ParseContext) error {
		if err := a.requireUser(); err != nil {
			return err
		}
		id, err := parseID(*rmID)
		if err != nil {
			return err
		}
		if err := a.api.DeleteJSONLD(a.ctx, id); err != nil {
			return err
		}
		return a.say("deleted feed %s", id)
	})
}

func (a *App) addVisibilityCommands() {
	vis := a.app.Command("visibility", "Run and review AI visibility audits")

	cmd := vis.Command("run", "Run a visibility check now")
	runBiz := businessFlag(cmd)
	cmd.Action(func(*kingpin.ParseContext) error {
		id, err := a.owner(*runBiz)
		if err != nil {
			return err
		}
		page, err := a.pages.RunVisibilityCheck(a.ctx, id)
		if err != nil {
			return err
		}
		return a.print(page)
	})

	cmd = vis.Command("results", "List past audit results and suggestions")
	resBiz := businessFlag(cmd)
	cmd.Action(func(*kingpin.ParseContext) error {
		id, err := a.owner(*resBiz)
		if err != nil {
			return err
		}
		return showPage(a, "visibility", func(ctx context.Context) (*services.VisibilityPage, error) {
			return a.pages.Visibility(ctx, id)
		})
	})

	cmd = vis.Command("suggestions", "List improvement suggestions")
	sugBiz := businessFlag(cmd)
	limit := cmd.Flag("limit", "Page size").Default("20").Int()
	cmd.Action(func(*kingpin.ParseContext) error {
		id, err := a.owner(*sugBiz)
		if err != nil {
			return err
		}
		suggestions, err := a.api.ListVisibilitySuggestions(a.ctx, id, *limit, 0)
		if err != nil {
			return err
		}
		return a.print(suggestions)
	})
}
