package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"schedsim/config"
	"schedsim/internal/requests"
	"schedsim/internal/responses"
	"schedsim/internal/schedulers"
)

var (
	processFile string
	policy      string
	quantum     int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one simulation from a descriptor file",
	Long:  "Reads pid,arrival,burst[,priority] lines from a file and prints the Gantt chart and timing table.",
	Run: func(cmd *cobra.Command, args []string) {
		data, err := os.ReadFile(processFile)
		if err != nil {
			logrus.Fatalf("read %s: %v", processFile, err)
		}
		jobs, err := requests.ParseJobLines(string(data))
		if err != nil {
			logrus.Fatalln(err)
		}

		cfg := config.GetSchedulerConfig()
		q := quantum
		if q == 0 {
			q = cfg.RoundRobinTimeQuantum
		}
		response, err := schedulers.Schedule(policy, jobs, schedulers.Options{
			Quantum:     q,
			LevelQuanta: cfg.MultilevelFeedbackQueueLevelsTimeQuantum,
		})
		if err != nil {
			logrus.Fatalln(err)
		}
		printResponse(os.Stdout, response)
	},
}

func init() {
	runCmd.Flags().StringVarP(&processFile, "file", "f", "", "descriptor file, one pid,arrival,burst[,priority] per line")
	runCmd.Flags().StringVarP(&policy, "algorithm", "a", schedulers.PolicyFirstComeFirstServe, "scheduling policy (fcfs|sjf-np|sjf-p|rr|priority-np|priority-p|mlfq)")
	runCmd.Flags().IntVarP(&quantum, "quantum", "q", 0, "round robin time quantum (default from config)")
	runCmd.MarkFlagRequired("file")
}

func printResponse(w io.Writer, response responses.ScheduleResponse) {
	fmt.Fprintln(w, "Gantt chart:")
	for _, slice := range response.Timeline {
		fmt.Fprintf(w, "  %4d - %-4d %s\n", slice.Start, slice.End, slice.Actor)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PID\tARRIVAL\tBURST\tPRIORITY\tSTART\tCOMPLETION\tTAT\tWT\tRT")
	for _, row := range response.Details {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\t%s\t%s\t%s\t%s\n",
			row.Pid, row.Arrival, row.Burst, row.Priority,
			formatNullable(row.StartTime), formatNullable(row.CompletionTime),
			formatNullable(row.TurnAroundTime), formatNullable(row.WaitingTime), formatNullable(row.ResponseTime))
	}
	tw.Flush()

	if response.AverageTurnAroundTime != nil {
		fmt.Fprintf(w, "avg TAT=%.2f  avg WT=%.2f  avg RT=%.2f\n",
			*response.AverageTurnAroundTime, *response.AverageWaitingTime, *response.AverageResponseTime)
	}
}

func formatNullable(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}
