package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sartorproj/tsfeat/group"
	"github.com/sartorproj/tsfeat/record"
)

var (
	groupDBPath string
	groupsPath  string
	groupSave   bool
	groupAssume bool
)

var groupCmd = &cobra.Command{
	Use:   "group",
	Short: "Partition stored records into keyword groups",
	Long: `Load every record from the store and partition them into keyword
groups. Groups come from a YAML definition file; without one, a group per
distinct keyword can be derived after confirmation.

With --save, the validated assignment is written back to the store,
replacing any previously stored assignment.`,
	RunE: runGroup,
}

func init() {
	groupCmd.Flags().StringVar(&groupDBPath, "db", "records.db", "path to the record store")
	groupCmd.Flags().StringVar(&groupsPath, "groups", "", "YAML file defining keyword groups")
	groupCmd.Flags().BoolVar(&groupSave, "save", false, "write the assignment back to the store")
	groupCmd.Flags().BoolVarP(&groupAssume, "yes", "y", false, "assume yes on confirmation prompts")
}

func runGroup(cmd *cobra.Command, args []string) error {
	store, err := record.Open(groupDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.LoadAll()
	if err != nil {
		return err
	}
	logger.Debug("loaded records", zap.String("db", groupDBPath), zap.Int("count", len(records)))

	var groups []group.KeywordGroup
	if groupsPath != "" {
		groups, err = group.LoadGroupsFile(groupsPath)
		if err != nil {
			return err
		}
		logger.Debug("loaded groups", zap.String("file", groupsPath), zap.Int("count", len(groups)))
	}

	opts := &group.Options{
		Save:    groupSave,
		Store:   store,
		Confirm: confirm,
	}

	assign, err := group.Partition(records, groups, opts)
	if err != nil {
		return err
	}
	if assign == nil {
		fmt.Println("No groups derived; nothing to do.")
		return nil
	}

	if len(groups) == 0 {
		groups = group.AutoGroups(records)
	}

	fmt.Printf("%-36s  %-20s  %s\n", "RECORD", "NAME", "GROUP")
	for i := range records {
		g := groups[assign[i]]
		name := g.Name
		if name == "" {
			name = strings.Join(g.Keywords, "|")
		}
		fmt.Printf("%-36s  %-20s  %d (%s)\n", records[i].ID, records[i].Name, assign[i], name)
	}

	if groupSave {
		logger.Info("assignment saved",
			zap.Int("records", len(records)),
			zap.Int("groups", len(groups)))
	}
	return nil
}

// confirm asks a yes/no question on the terminal unless --yes was given.
func confirm(prompt string) bool {
	if groupAssume {
		return true
	}

	fmt.Printf("%s [y/N]: ", prompt)
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}
