package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/hadiant/go-admin-dashboard/components/dashboard"
	"github.com/hadiant/go-admin-dashboard/pkg/tenants"
)

type tenantsCmd struct {
	Search string `help:"Case-insensitive substring of the business name."`
	Plan   string `default:"all" help:"Plan filter (all, starter, professional, business)."`
	Status string `default:"all" help:"Status filter (all, active, inactive)."`
}

func (cmd *tenantsCmd) Run(ctx context.Context, g *Globals) error {
	app, err := newApplication(g, io.Discard)
	if err != nil {
		return err
	}
	view, err := app.service.FilterTenants(ctx, tenants.Criteria{
		Search: cmd.Search,
		Plan:   cmd.Plan,
		Status: cmd.Status,
	})
	if err != nil {
		return err
	}
	return writeTenants(g.Stdout, view)
}

func writeTenants(out io.Writer, view tenants.View) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tBUSINESS\tPHONE\tPLAN\tSTATUS\tCHATS TODAY\tCHATS MONTH\tIMAGES\tMRR")
	for _, r := range view.Records {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%d\t%s\t%d\t%s\n",
			r.ID, r.BusinessName, r.Phone, r.Plan, r.Status,
			r.ChatsToday, dashboard.FormatThousands(int64(r.ChatsMonth)), r.Images,
			dashboard.FormatRupiah(r.MRR))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if view.TotalCount == 0 {
		fmt.Fprintln(out, "No tenants found")
	}
	_, err := fmt.Fprintf(out, "\nTotal: %d  Active: %d  Chats this month: %s  MRR: %s\n",
		view.TotalCount, view.ActiveCount,
		dashboard.FormatThousands(int64(view.TotalChatsMonth)),
		dashboard.FormatRupiah(view.TotalMRR))
	return err
}

type plansCmd struct{}

func (plansCmd) Run(g *Globals) error {
	return writePlans(g.Stdout, tenants.Catalog())
}

func writePlans(out io.Writer, catalog []tenants.PlanTerms) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PLAN\tPRICE/MONTH\tCHATS\tIMAGES\tWA SESSIONS")
	for _, terms := range catalog {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n",
			terms.Plan,
			dashboard.FormatRupiah(terms.MonthlyPrice),
			quota(terms.ChatLimit),
			quota(terms.ImageLimit),
			terms.WASessions)
	}
	return tw.Flush()
}

func quota(limit int) string {
	if limit == tenants.Unlimited {
		return "Unlimited"
	}
	return strconv.Itoa(limit)
}
