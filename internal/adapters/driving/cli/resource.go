package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OsuohaNnamdi/admin-BRB-sub000/internal/core/domain"
)

var (
	resourceQuery   []string
	resourcePayload payloadFlags
)

var resourceCmd = &cobra.Command{
	Use:   "resource",
	Short: "Manage admin resources",
	Long: `List, view, create, update and delete admin resources.

Resource kinds: products, categories, orders, banners, coupons,
delivery-prices, reviews.

Examples:
  brbadmin resource list products --query search=shoe
  brbadmin resource get orders 17
  brbadmin resource create coupons --data '{"code":"SUMMER","discount":10}'
  brbadmin resource create banners --field title=Hero --file image=./hero.png
  brbadmin resource patch orders 17 --data '{"status":"shipped"}'
  brbadmin resource delete reviews 5`,
}

var resourceKindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List resource kinds and their paths",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		for _, k := range domain.AllResourceKinds() {
			cmd.Printf("  %-16s %s\n", k, k.CollectionPath())
		}
	},
}

var resourceListCmd = &cobra.Command{
	Use:   "list [kind]",
	Short: "List a resource collection",
	Args:  cobra.ExactArgs(1),
	RunE:  runResourceList,
}

var resourceGetCmd = &cobra.Command{
	Use:   "get [kind] [id]",
	Short: "Show one item",
	Args:  cobra.ExactArgs(2),
	RunE:  runResourceGet,
}

var resourceCreateCmd = &cobra.Command{
	Use:   "create [kind]",
	Short: "Create an item",
	Args:  cobra.ExactArgs(1),
	RunE:  runResourceCreate,
}

var resourceUpdateCmd = &cobra.Command{
	Use:   "update [kind] [id]",
	Short: "Replace an item",
	Args:  cobra.ExactArgs(2),
	RunE:  runResourceWrite,
}

var resourcePatchCmd = &cobra.Command{
	Use:   "patch [kind] [id]",
	Short: "Partially update an item",
	Args:  cobra.ExactArgs(2),
	RunE:  runResourceWrite,
}

var resourceDeleteCmd = &cobra.Command{
	Use:   "delete [kind] [id]",
	Short: "Delete an item",
	Args:  cobra.ExactArgs(2),
	RunE:  runResourceDelete,
}

func init() {
	resourceListCmd.Flags().StringArrayVarP(&resourceQuery, "query", "q", nil, "Query parameter key=value")
	for _, c := range []*cobra.Command{resourceCreateCmd, resourceUpdateCmd, resourcePatchCmd} {
		resourcePayload.register(c)
	}

	resourceCmd.AddCommand(resourceKindsCmd)
	resourceCmd.AddCommand(resourceListCmd)
	resourceCmd.AddCommand(resourceGetCmd)
	resourceCmd.AddCommand(resourceCreateCmd)
	resourceCmd.AddCommand(resourceUpdateCmd)
	resourceCmd.AddCommand(resourcePatchCmd)
	resourceCmd.AddCommand(resourceDeleteCmd)
	rootCmd.AddCommand(resourceCmd)
}

func parseKind(arg string) (domain.ResourceKind, error) {
	kind, err := domain.ParseResourceKind(arg)
	if err != nil {
		return "", fmt.Errorf("unknown resource kind %q (see 'brbadmin resource kinds')", arg)
	}
	return kind, nil
}

func runResourceList(cmd *cobra.Command, args []string) error {
	if resourceService == nil {
		return errors.New("resource service not configured")
	}
	kind, err := parseKind(args[0])
	if err != nil {
		return err
	}
	query, err := parsePairs("query", resourceQuery)
	if err != nil {
		return err
	}

	raw, err := resourceService.List(cmd.Context(), kind, query)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", kind, err)
	}
	printJSON(cmd, raw)
	return nil
}

func runResourceGet(cmd *cobra.Command, args []string) error {
	if resourceService == nil {
		return errors.New("resource service not configured")
	}
	kind, err := parseKind(args[0])
	if err != nil {
		return err
	}

	raw, err := resourceService.Get(cmd.Context(), kind, args[1])
	if err != nil {
		return fmt.Errorf("failed to get %s %s: %w", kind, args[1], err)
	}
	printJSON(cmd, raw)
	return nil
}

func runResourceCreate(cmd *cobra.Command, args []string) error {
	if resourceService == nil {
		return errors.New("resource service not configured")
	}
	kind, err := parseKind(args[0])
	if err != nil {
		return err
	}
	body, closeBody, err := resourcePayload.build()
	if err != nil {
		return err
	}
	defer closeBody()
	if body == nil {
		return errors.New("nothing to send: use --data, --field or --file")
	}

	raw, err := resourceService.Create(cmd.Context(), kind, body)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", kind, err)
	}
	printJSON(cmd, raw)
	return nil
}

// runResourceWrite serves both update (PUT) and patch (PATCH).
func runResourceWrite(cmd *cobra.Command, args []string) error {
	if resourceService == nil {
		return errors.New("resource service not configured")
	}
	kind, err := parseKind(args[0])
	if err != nil {
		return err
	}
	body, closeBody, err := resourcePayload.build()
	if err != nil {
		return err
	}
	defer closeBody()
	if body == nil {
		return errors.New("nothing to send: use --data, --field or --file")
	}

	write := resourceService.Update
	if cmd.Name() == "patch" {
		write = resourceService.Patch
	}
	raw, err := write(cmd.Context(), kind, args[1], body)
	if err != nil {
		return fmt.Errorf("failed to %s %s %s: %w", cmd.Name(), kind, args[1], err)
	}
	printJSON(cmd, raw)
	return nil
}

func runResourceDelete(cmd *cobra.Command, args []string) error {
	if resourceService == nil {
		return errors.New("resource service not configured")
	}
	kind, err := parseKind(args[0])
	if err != nil {
		return err
	}

	if err := resourceService.Delete(cmd.Context(), kind, args[1]); err != nil {
		return fmt.Errorf("failed to delete %s %s: %w", kind, args[1], err)
	}
	cmd.Printf("Deleted %s %s\n", kind, args[1])
	return nil
}
