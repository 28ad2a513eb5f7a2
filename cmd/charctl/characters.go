package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/character-customizer/internal/app/customization"
	"github.com/preston-bernstein/character-customizer/internal/domain/character"
)

func (c *cli) createCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create FIRST LAST",
		Short: "Seed a character from the template",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := character.NewIdentity(args[0], args[1])
			if err != nil {
				return err
			}
			created, err := c.characters(cmd).Create(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd, map[string]any{"name": id.Name(), "created": created})
		},
	}
}

func (c *cli) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show FIRST LAST",
		Short: "Print a character document",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := character.NewIdentity(args[0], args[1])
			if err != nil {
				return err
			}
			data, err := c.characters(cmd).Character(cmd.Context(), id)
			if err != nil {
				return err
			}
			var out bytes.Buffer
			if err := json.Indent(&out, data, "", "  "); err != nil {
				return err
			}
			out.WriteByte('\n')
			_, err = cmd.OutOrStdout().Write(out.Bytes())
			return err
		},
	}
}

func (c *cli) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored characters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := c.characters(cmd).Characters(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, names)
		},
	}
}

// setter applies a parsed mutation to one character.
type setter func(cmd *cobra.Command, svc *customization.Service, id character.Identity, values []string) error

func (c *cli) setCmd() *cobra.Command {
	set := &cobra.Command{
		Use:   "set",
		Short: "Change a cosmetic field of a character",
	}

	set.AddCommand(
		c.setterCmd("gender FIRST LAST CODE", "Set PlayerGUID and PlayerModel", 1,
			func(cmd *cobra.Command, svc *customization.Service, id character.Identity, v []string) error {
				code, err := strconv.ParseUint(v[0], 10, 8)
				if err != nil {
					return fmt.Errorf("%w: gender %q", customization.ErrInvalidValue, v[0])
				}
				return svc.SetGender(cmd.Context(), id, uint8(code))
			}),
		c.setterCmd("eyes FIRST LAST COLOR", "Set EyeColor", 1,
			func(cmd *cobra.Command, svc *customization.Service, id character.Identity, v []string) error {
				color, err := strconv.ParseInt(v[0], 10, 64)
				if err != nil {
					return fmt.Errorf("%w: eye color %q", customization.ErrInvalidValue, v[0])
				}
				return svc.SetEyeColor(cmd.Context(), id, color)
			}),
		c.setterCmd("hair FIRST LAST STYLE COLOR", "Set PlayerHair and HairColor", 2,
			func(cmd *cobra.Command, svc *customization.Service, id character.Identity, v []string) error {
				color, err := strconv.ParseInt(v[1], 10, 64)
				if err != nil {
					return fmt.Errorf("%w: hair color %q", customization.ErrInvalidValue, v[1])
				}
				return svc.SetHair(cmd.Context(), id, v[0], color)
			}),
		c.setterCmd("skintone FIRST LAST TONE", "Set Skintone", 1,
			func(cmd *cobra.Command, svc *customization.Service, id character.Identity, v []string) error {
				return svc.SetSkintone(cmd.Context(), id, v[0])
			}),
		c.setterCmd("extras FIRST LAST ADDR", "Set the species add-on", 1,
			func(cmd *cobra.Command, svc *customization.Service, id character.Identity, v []string) error {
				return svc.SetExtras(cmd.Context(), id, v[0])
			}),
		c.setterCmd("facepaint FIRST LAST ALIAS", "Set FacePaint", 1,
			func(cmd *cobra.Command, svc *customization.Service, id character.Identity, v []string) error {
				return svc.SetFacePaint(cmd.Context(), id, v[0])
			}),
	)
	return set
}

func (c *cli) setterCmd(use, short string, values int, apply setter) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(2 + values),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := character.NewIdentity(args[0], args[1])
			if err != nil {
				return err
			}
			svc := c.characters(cmd)
			if err := apply(cmd, svc, id, args[2:]); err != nil {
				return err
			}
			doc, err := svc.Document(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd, doc)
		},
	}
}

func (c *cli) openCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open",
		Short: "Show the characters folder in the file browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.characters(cmd).OpenFolder(cmd.Context())
		},
	}
}
