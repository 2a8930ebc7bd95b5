package commands

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/marshallshelly/boardwalk/cmd/boardwalk/output"
	"github.com/marshallshelly/boardwalk/pkg/api"
	"github.com/marshallshelly/boardwalk/pkg/board"
)

var (
	// List flags
	listLimit    int
	listSearch   string
	listCategory string
	listSort     string
	listOrder    string
	listFrom     string
	listTo       string
	listAll      bool

	// Create/update flags
	postTitle    string
	postBody     string
	postCategory string
	postTags     string

	// Delete flags
	deleteYes bool
)

// postsCmd represents the posts command
var postsCmd = &cobra.Command{
	Use:   "posts",
	Short: "Manage board posts",
	Long: `Manage board posts from the command line.

Subcommands:
  list    - List posts with filters and pagination
  get     - Show a single post
  create  - Create a post
  update  - Update fields of a post
  delete  - Delete a post`,
}

// postsListCmd lists posts
var postsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List posts",
	Long: `List posts with the same filters the browser offers.

Examples:
  boardwalk posts list --limit 20 --category QNA
  boardwalk posts list --search deploy --sort title --order asc
  boardwalk posts list --from 2026-01-01 --to 2026-02-01 --all --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPostsList()
	},
}

// postsGetCmd shows one post
var postsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a single post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPostsGet(args[0])
	},
}

// postsCreateCmd creates a post
var postsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a post",
	Long: `Create a post. Input is validated locally before anything is sent.

Examples:
  boardwalk posts create --title "Release notes" --body "..." --category NOTICE
  boardwalk posts create --title Hi --body Hello --tags "intro, misc"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPostsCreate()
	},
}

// postsUpdateCmd updates a post
var postsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields of a post",
	Long: `Update a post. Only the flags you pass are sent; everything else is
left untouched. The id never changes.

Examples:
  boardwalk posts update 42 --title "New title"
  boardwalk posts update 42 --category FREE --tags "one, two"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPostsUpdate(cmd, args[0])
	},
}

// postsDeleteCmd deletes a post
var postsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a post",
	Long: `Delete a post. Deletion is permanent, so the command asks for
confirmation unless --yes is passed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPostsDelete(args[0])
	},
}

func init() {
	postsListCmd.Flags().IntVar(&listLimit, "limit", 40, "Page size")
	postsListCmd.Flags().StringVar(&listSearch, "search", "", "Keyword matched against title and body")
	postsListCmd.Flags().StringVar(&listCategory, "category", "", "Filter by category (NOTICE, QNA, FREE)")
	postsListCmd.Flags().StringVar(&listSort, "sort", "createdAt", "Sort field (createdAt, title)")
	postsListCmd.Flags().StringVar(&listOrder, "order", "desc", "Sort order (asc, desc)")
	postsListCmd.Flags().StringVar(&listFrom, "from", "", "Lower created-at bound (local, e.g. 2026-01-02T15:04)")
	postsListCmd.Flags().StringVar(&listTo, "to", "", "Upper created-at bound (local)")
	postsListCmd.Flags().BoolVar(&listAll, "all", false, "Follow cursors until the listing is exhausted")

	for _, c := range []*cobra.Command{postsCreateCmd, postsUpdateCmd} {
		c.Flags().StringVar(&postTitle, "title", "", "Post title")
		c.Flags().StringVar(&postBody, "body", "", "Post body")
		c.Flags().StringVar(&postCategory, "category", "", "Post category (NOTICE, QNA, FREE)")
		c.Flags().StringVar(&postTags, "tags", "", "Comma-separated tags")
	}

	postsDeleteCmd.Flags().BoolVar(&deleteYes, "yes", false, "Skip the confirmation prompt")

	postsCmd.AddCommand(postsListCmd)
	postsCmd.AddCommand(postsGetCmd)
	postsCmd.AddCommand(postsCreateCmd)
	postsCmd.AddCommand(postsUpdateCmd)
	postsCmd.AddCommand(postsDeleteCmd)
	rootCmd.AddCommand(postsCmd)
}

func buildListQuery() (board.Query, error) {
	q := board.DefaultQuery()
	q.Limit = listLimit
	q.Search = strings.TrimSpace(listSearch)

	if listCategory != "" {
		cat, err := board.ParseCategory(listCategory)
		if err != nil {
			return q, err
		}
		q.Category = cat
	}

	switch board.SortField(listSort) {
	case board.SortByCreatedAt, board.SortByTitle:
		q.Sort = board.SortField(listSort)
	default:
		return q, fmt.Errorf("unknown sort field %q", listSort)
	}

	switch board.SortOrder(listOrder) {
	case board.OrderAsc, board.OrderDesc:
		q.Order = board.SortOrder(listOrder)
	default:
		return q, fmt.Errorf("unknown sort order %q", listOrder)
	}

	var err error
	if q.From, err = board.BoundToISO(listFrom, time.Local); err != nil {
		return q, fmt.Errorf("invalid --from: %w", err)
	}
	if q.To, err = board.BoundToISO(listTo, time.Local); err != nil {
		return q, fmt.Errorf("invalid --to: %w", err)
	}
	return q, nil
}

func runPostsList() error {
	query, err := buildListQuery()
	if err != nil {
		return err
	}

	client, _, err := gateway()
	if err != nil {
		return err
	}
	posts := api.NewPostsClient(client)
	ctx := context.Background()

	var items []board.Post
	cursor := ""
	truncated := false
	for {
		page, err := posts.List(ctx, query, cursor)
		if err != nil {
			return describeAPIError(err)
		}
		items = append(items, page.Items...)
		if !page.HasNext {
			break
		}
		if !listAll {
			truncated = true
			break
		}
		cursor = page.NextCursor
	}

	if jsonOutput {
		return printJSON(items)
	}

	if len(items) == 0 {
		output.Muted("No posts match the given filters.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCATEGORY\tTITLE\tTAGS\tCREATED")
	for _, p := range items {
		// Plain category here; colored badges throw off tabwriter widths.
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			p.ID,
			string(p.Category),
			p.Title,
			board.JoinTags(p.Tags),
			p.CreatedAt.Local().Format("2006-01-02 15:04"),
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	output.Muted("%d post(s)", len(items))
	if truncated {
		output.Muted("More results available; pass --all to fetch every page.")
	}
	return nil
}

func runPostsGet(id string) error {
	client, _, err := gateway()
	if err != nil {
		return err
	}
	post, err := api.NewPostsClient(client).Get(context.Background(), id)
	if err != nil {
		return describeAPIError(err)
	}

	if jsonOutput {
		return printJSON(post)
	}

	output.Section(post.Title)
	fmt.Printf("%s  %s\n", output.CategoryBadge(post.Category), post.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	output.Muted("id: %s  author: %s", post.ID, post.UserID)
	if len(post.Tags) > 0 {
		output.Muted("tags: %s", board.JoinTags(post.Tags))
	}
	fmt.Println()
	fmt.Println(post.Body)
	return nil
}

func runPostsCreate() error {
	category := postCategory
	if category == "" {
		category = string(board.CategoryFree)
	}
	input, err := board.Validate(postTitle, postBody, board.Category(category), postTags)
	if err != nil {
		return err
	}

	client, _, err := gateway()
	if err != nil {
		return err
	}
	post, err := api.NewPostsClient(client).Create(context.Background(), input)
	if err != nil {
		return describeAPIError(err)
	}

	if jsonOutput {
		return printJSON(post)
	}
	output.Success("Created post %s", post.ID)
	return nil
}

func runPostsUpdate(cmd *cobra.Command, id string) error {
	client, _, err := gateway()
	if err != nil {
		return err
	}
	posts := api.NewPostsClient(client)
	ctx := context.Background()

	// Merge flags over the current state so the full document can be
	// validated before any byte leaves the machine.
	current, err := posts.Get(ctx, id)
	if err != nil {
		return describeAPIError(err)
	}

	title := current.Title
	body := current.Body
	category := string(current.Category)
	tags := board.JoinTags(current.Tags)

	var patch api.PostPatch
	if cmd.Flags().Changed("title") {
		title = postTitle
	}
	if cmd.Flags().Changed("body") {
		body = postBody
	}
	if cmd.Flags().Changed("category") {
		category = postCategory
	}
	if cmd.Flags().Changed("tags") {
		tags = postTags
	}

	input, err := board.Validate(title, body, board.Category(category), tags)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("title") {
		patch.Title = &input.Title
	}
	if cmd.Flags().Changed("body") {
		patch.Body = &input.Body
	}
	if cmd.Flags().Changed("category") {
		patch.Category = &input.Category
	}
	if cmd.Flags().Changed("tags") {
		patch.Tags = &input.Tags
	}
	if patch.Title == nil && patch.Body == nil && patch.Category == nil && patch.Tags == nil {
		output.Muted("Nothing to update.")
		return nil
	}

	post, err := posts.Update(ctx, id, patch)
	if err != nil {
		return describeAPIError(err)
	}

	if jsonOutput {
		return printJSON(post)
	}
	output.Success("Updated post %s", post.ID)
	return nil
}

func runPostsDelete(id string) error {
	if !deleteYes {
		fmt.Printf("Delete post %s? This cannot be undone. [y/N] ", id)
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if answer := strings.ToLower(strings.TrimSpace(line)); answer != "y" && answer != "yes" {
			output.Muted("Aborted.")
			return nil
		}
	}

	client, _, err := gateway()
	if err != nil {
		return err
	}
	if err := api.NewPostsClient(client).Delete(context.Background(), id); err != nil {
		return describeAPIError(err)
	}
	output.Success("Deleted post %s", id)
	return nil
}

// describeAPIError turns auth failures into actionable messages.
func describeAPIError(err error) error {
	if api.IsStatus(err, 401) {
		output.Error("Session rejected by the server")
		output.Muted("Run `boardwalk login` to sign in again.")
		return fmt.Errorf("unauthorized")
	}
	if api.IsStatus(err, 404) {
		return fmt.Errorf("post not found")
	}
	return err
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
