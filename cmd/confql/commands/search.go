package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/norm"

	"confql/pkg/confluence"
	"confql/pkg/cql"
)

var (
	searchSpaces         []string
	searchFavourite      bool
	searchTypes          []string
	searchTitle          string
	searchText           string
	searchLabels         []string
	searchExcludeLabels  []string
	searchCreator        string
	searchContributor    string
	searchMentionsMe     bool
	searchWatching       bool
	searchModifiedWithin time.Duration
	searchCreatedAfter   string
	searchAncestor       int64
	searchOrderBy        []string
	searchCQL            string
	searchProject        string
	searchLimit          int
	searchStart          int
	searchPrint          bool
)

var errNoCriteria = errors.New("no search criteria: give at least one filter flag or --cql")

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search content with CQL built from flags",
	Long: `Search Confluence content. Each filter flag adds one CQL clause and all
clauses must match. Use "me" as a user name to refer to the current user.

Order with --order-by FIELD[:asc|desc] (repeatable). Labels cannot be used for
ordering. Use --print to show the generated CQL without calling Confluence.`,
	Example: `  confql search --space DOCS --type page --title "runbook"
  confql search --favourite-spaces --label release --order-by lastModified:desc
  confql search --creator me --modified-within 168h --print
  confql search --cql 'label = "adr" order by created desc'`,
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if searchPrint && searchProject == "" {
		query, err := buildSearchQuery(searchSpaces)
		if err != nil {
			return err
		}
		return printQuery(out, query)
	}

	cfg, log, client, err := setup()
	if err != nil {
		return err
	}

	spaces := searchSpaces
	if searchProject != "" {
		if err := cfg.SelectProject(searchProject); err != nil {
			return fmt.Errorf("failed to select project: %w", err)
		}
		spaces = append(append([]string(nil), spaces...), cfg.Confluence.SpaceKey)
	}

	query, err := buildSearchQuery(spaces)
	if err != nil {
		return err
	}
	if searchPrint {
		return printQuery(out, query)
	}

	limit := searchLimit
	if limit <= 0 {
		limit = cfg.SearchLimit()
	}

	ctx, cancel := commandContext(cmd)
	defer cancel()

	log.Debug("Running search (start=%d, limit=%d)", searchStart, limit)
	page, err := client.Search(ctx, query, confluence.SearchOptions{Start: searchStart, Limit: limit})
	if err != nil {
		return err
	}

	printSearchResults(out, page)
	return nil
}

func printQuery(w io.Writer, query confluence.Query) error {
	text, err := query.Render()
	if err != nil {
		return fmt.Errorf("invalid search: %w", err)
	}
	fmt.Fprintln(w, text)
	return nil
}

func printSearchResults(w io.Writer, page *confluence.ResultPage[confluence.Content]) {
	if len(page.Results) == 0 {
		fmt.Fprintln(w, "No results.")
		return
	}
	for _, c := range page.Results {
		space := ""
		if c.Space != nil && c.Space.Key != "" {
			space = " [" + c.Space.Key + "]"
		}
		fmt.Fprintf(w, "%s %s (ID: %s)%s\n", contentIcon(c.Type), c.Title, c.ID, space)
	}
	fmt.Fprintf(w, "\nShowing %d result(s) from %d\n", len(page.Results), page.Start)
	if page.HasNext() {
		fmt.Fprintf(w, "More results available: use --start %d\n", page.Start+len(page.Results))
	}
}

func contentIcon(contentType string) string {
	switch contentType {
	case string(cql.ContentTypeBlogPost):
		return "📰"
	case string(cql.ContentTypeComment):
		return "💬"
	case string(cql.ContentTypeAttachment):
		return "📎"
	default:
		return "📄"
	}
}

// buildSearchQuery turns the filter flags into a single query.
func buildSearchQuery(spaces []string) (confluence.Query, error) {
	var clauses []*cql.Clause

	switch {
	case searchFavourite && len(spaces) > 0:
		clauses = append(clauses, cql.Where.Space().InFavouriteSpacesAnd(spaces...))
	case searchFavourite:
		clauses = append(clauses, cql.Where.Space().InFavouriteSpaces())
	case len(spaces) == 1:
		clauses = append(clauses, cql.Where.Space().Is(spaces[0]))
	case len(spaces) > 1:
		clauses = append(clauses, cql.Where.Space().In(spaces...))
	}

	if len(searchTypes) > 0 {
		types := make([]cql.ContentType, 0, len(searchTypes))
		for _, t := range searchTypes {
			ct, err := parseContentType(t)
			if err != nil {
				return nil, err
			}
			types = append(types, ct)
		}
		if len(types) == 1 {
			clauses = append(clauses, cql.Where.Type().Is(types[0]))
		} else {
			clauses = append(clauses, cql.Where.Type().In(types...))
		}
	}

	if title := normalizeTerm(searchTitle); title != "" {
		clauses = append(clauses, cql.Where.Title().Contains(title))
	}
	if text := normalizeTerm(searchText); text != "" {
		clauses = append(clauses, cql.Where.Text().Contains(text))
	}
	if len(searchLabels) > 0 {
		clauses = append(clauses, cql.Where.Label().In(normalizeTerms(searchLabels)...))
	}
	if len(searchExcludeLabels) > 0 {
		clauses = append(clauses, cql.Where.Label().Not().In(normalizeTerms(searchExcludeLabels)...))
	}
	if searchCreator != "" {
		clauses = append(clauses, userClause(cql.Where.Creator(), searchCreator))
	}
	if searchContributor != "" {
		clauses = append(clauses, userClause(cql.Where.Contributor(), searchContributor))
	}
	if searchMentionsMe {
		clauses = append(clauses, cql.Where.Mention().IsCurrentUser())
	}
	if searchWatching {
		clauses = append(clauses, cql.Where.Watcher().IsCurrentUser())
	}
	if searchModifiedWithin > 0 {
		clauses = append(clauses, cql.Where.LastModified().AfterOrOn().StartOfDay(-searchModifiedWithin))
	}
	if searchCreatedAfter != "" {
		t, err := parseDate(searchCreatedAfter)
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, cql.Where.Created().AfterOrOn().DateTime(t))
	}
	if searchAncestor > 0 {
		clauses = append(clauses, cql.Where.Ancestor().Is(searchAncestor))
	}

	if searchCQL != "" {
		if len(clauses) > 0 || len(searchOrderBy) > 0 {
			return nil, errors.New("--cql cannot be combined with filter or --order-by flags")
		}
		return confluence.RawQuery(searchCQL), nil
	}

	var query *cql.Clause
	switch len(clauses) {
	case 0:
		return nil, errNoCriteria
	case 1:
		query = clauses[0]
	default:
		query = cql.And(clauses...)
	}

	for _, arg := range searchOrderBy {
		field, dir, err := parseOrderBy(arg)
		if err != nil {
			return nil, err
		}
		switch dir {
		case cql.Ascending:
			query = query.OrderByAscending(field)
		case cql.Descending:
			query = query.OrderByDescending(field)
		default:
			query = query.OrderBy(field)
		}
	}
	return query, nil
}

func userClause(b *cql.UserBuilder, name string) *cql.Clause {
	if strings.EqualFold(name, "me") {
		return b.IsCurrentUser()
	}
	return b.Is(name)
}

func parseContentType(s string) (cql.ContentType, error) {
	switch ct := cql.ContentType(strings.ToLower(strings.TrimSpace(s))); ct {
	case cql.ContentTypePage, cql.ContentTypeBlogPost, cql.ContentTypeComment, cql.ContentTypeAttachment:
		return ct, nil
	default:
		return "", fmt.Errorf("unknown content type '%s' (expected page, blogpost, comment or attachment)", s)
	}
}

func parseOrderBy(arg string) (cql.Field, cql.Direction, error) {
	name, dir, _ := strings.Cut(arg, ":")
	field, err := cql.ParseField(strings.TrimSpace(name))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid --order-by '%s': %w", arg, err)
	}
	switch strings.ToLower(strings.TrimSpace(dir)) {
	case "":
		return field, cql.DirectionDefault, nil
	case "asc":
		return field, cql.Ascending, nil
	case "desc":
		return field, cql.Descending, nil
	default:
		return 0, 0, fmt.Errorf("invalid --order-by direction '%s' (expected asc or desc)", dir)
	}
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", "2006-01-02 15:04"} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date '%s' (expected YYYY-MM-DD or \"YYYY-MM-DD HH:MM\")", s)
}

// normalizeTerm trims a search term and converts it to NFC so composed and
// decomposed input match the same indexed text.
func normalizeTerm(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

func normalizeTerms(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if t := normalizeTerm(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func init() {
	rootCmd.AddCommand(searchCmd)

	f := searchCmd.Flags()
	f.StringSliceVarP(&searchSpaces, "space", "s", nil, "Space key to search in (repeatable)")
	f.BoolVar(&searchFavourite, "favourite-spaces", false, "Search the current user's favourite spaces")
	f.StringSliceVarP(&searchTypes, "type", "t", nil, "Content type: page, blogpost, comment, attachment (repeatable)")
	f.StringVar(&searchTitle, "title", "", "Title contains the term")
	f.StringVar(&searchText, "text", "", "Text contains the term")
	f.StringSliceVarP(&searchLabels, "label", "l", nil, "Has any of the labels (repeatable)")
	f.StringSliceVar(&searchExcludeLabels, "exclude-label", nil, "Has none of the labels (repeatable)")
	f.StringVar(&searchCreator, "creator", "", "Created by user (\"me\" for the current user)")
	f.StringVar(&searchContributor, "contributor", "", "Edited by user (\"me\" for the current user)")
	f.BoolVar(&searchMentionsMe, "mentions-me", false, "Mentions the current user")
	f.BoolVar(&searchWatching, "watching", false, "Watched by the current user")
	f.DurationVar(&searchModifiedWithin, "modified-within", 0, "Modified since the start of the day this long ago (e.g. 168h)")
	f.StringVar(&searchCreatedAfter, "created-after", "", "Created on or after the date (YYYY-MM-DD)")
	f.Int64Var(&searchAncestor, "ancestor", 0, "Below the page with this ID")
	f.StringArrayVarP(&searchOrderBy, "order-by", "o", nil, "Order by FIELD[:asc|desc] (repeatable)")
	f.StringVar(&searchCQL, "cql", "", "Raw CQL query (not combinable with filter flags)")
	f.StringVarP(&searchProject, "project", "P", "", "Project name defined in config to restrict the space")
	f.IntVar(&searchLimit, "limit", 0, "Maximum number of results (default from config search.limit)")
	f.IntVar(&searchStart, "start", 0, "Index of the first result")
	f.BoolVar(&searchPrint, "print", false, "Print the CQL query instead of running it")
}
