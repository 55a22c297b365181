package main

import (
	"fmt"
	"fresh-connect/repositories"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/pflag"
)

const (
	whatUsers   = "users"
	whatGroups  = "groups"
	whatCurrent = "current"
)

func main() {
	dbPath := pflag.String("db", "./data/freshconnect", "Path to badger DB")
	codecName := pflag.String("codec", repositories.CodecJSON, "Blob codec used by the server (json|cbor)")
	what := pflag.String("what", whatGroups, "Collection to print (users|groups|current)")
	pflag.Parse()

	codec, err := repositories.NewCodec(*codecName)
	if err != nil {
		log.Fatal(err)
	}

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	store := repositories.NewBadgerStore(db)
	inspector := inspector{
		users:  repositories.NewUserRepository(store, codec),
		groups: repositories.NewGroupRepository(store, codec),
	}
	if err := inspector.render(os.Stdout, *what); err != nil {
		log.Fatal(err)
	}
}

type inspector struct {
	users  repositories.IUserRepository
	groups repositories.IGroupRepository
}

func (i inspector) render(w io.Writer, what string) error {
	table := newTable(w)
	switch what {
	case whatUsers:
		users, err := i.users.GetAllUsers()
		if err != nil {
			return err
		}
		table.SetHeader([]string{"ID", "Name", "University", "Branch", "Joined"})
		for _, u := range users {
			table.Append([]string{u.ID, u.Name, u.University, u.Branch, u.JoinedAt.Format(time.DateTime)})
		}
	case whatCurrent:
		user, found, err := i.users.GetCurrentUser()
		if err != nil {
			return err
		}
		table.SetHeader([]string{"ID", "Name", "University", "Branch", "Joined"})
		if found {
			table.Append([]string{user.ID, user.Name, user.University, user.Branch, user.JoinedAt.Format(time.DateTime)})
		}
	case whatGroups:
		groups, err := i.groups.GetGroups()
		if err != nil {
			return err
		}
		table.SetHeader([]string{"ID", "University", "Branch", "Members", "Messages", "Last message"})
		for _, g := range groups {
			last := ""
			if n := len(g.Messages); n > 0 {
				last = fmt.Sprintf("%s: %s", g.Messages[n-1].SenderName, g.Messages[n-1].Text)
			}
			table.Append([]string{
				g.ID,
				g.University,
				g.Branch,
				strings.Join(g.Members, ","),
				strconv.Itoa(len(g.Messages)),
				last,
			})
		}
	default:
		return fmt.Errorf("unknown collection %q, expected users, groups or current", what)
	}
	table.Render()
	return nil
}

func newTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

// openDB opens read-only so the inspector can run next to a live server.
func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)
	return badger.Open(opts)
}
