package main

import (
	"github.com/spf13/cobra"
)

func (c *cli) catalogCmd() *cobra.Command {
	cat := &cobra.Command{
		Use:   "catalog",
		Short: "List cosmetic options from the catalog",
	}

	cat.AddCommand(
		&cobra.Command{
			Use:   "eye-colors",
			Short: "List eye colors",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				rows, err := c.options(cmd).EyeColors(cmd.Context())
				return printRows(cmd, rows, err)
			},
		},
		&cobra.Command{
			Use:   "hair-colors",
			Short: "List hair colors",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				rows, err := c.options(cmd).HairColors(cmd.Context())
				return printRows(cmd, rows, err)
			},
		},
		&cobra.Command{
			Use:   "facepaints",
			Short: "List face paints",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				rows, err := c.options(cmd).FacePaints(cmd.Context())
				return printRows(cmd, rows, err)
			},
		},
		c.hairsCmd(),
		c.extrasCmd(),
	)
	return cat
}

func (c *cli) hairsCmd() *cobra.Command {
	var gender string
	cmd := &cobra.Command{
		Use:   "hairs",
		Short: "List hairstyles for a gender",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := c.options(cmd).Hairs(cmd.Context(), gender)
			return printRows(cmd, rows, err)
		},
	}
	cmd.Flags().StringVar(&gender, "gender", "", "gender label, e.g. Male")
	_ = cmd.MarkFlagRequired("gender")
	return cmd
}

func (c *cli) extrasCmd() *cobra.Command {
	var gender, species string
	cmd := &cobra.Command{
		Use:   "extras",
		Short: "List add-ons for a gender and species",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := c.options(cmd).Extras(cmd.Context(), gender, species)
			return printRows(cmd, rows, err)
		},
	}
	cmd.Flags().StringVar(&gender, "gender", "", "gender label, e.g. Female")
	cmd.Flags().StringVar(&species, "species", "", "species label, e.g. Pixie")
	_ = cmd.MarkFlagRequired("gender")
	_ = cmd.MarkFlagRequired("species")
	return cmd
}

func printRows(cmd *cobra.Command, rows any, err error) error {
	if err != nil {
		return err
	}
	return printJSON(cmd, rows)
}
