package jobs

import (
	"context"
	"time"

	"github.com/thoth-ai/thoth/ent"
	"github.com/thoth-ai/thoth/ent/sqldb"
)

// markRunning flips the per-DB quintuple of one job kind to RUNNING.
func (r *Runner) markRunning(ctx context.Context, sqlDbID string, kind JobKind, taskID string) error {
	now := time.Now()
	u := r.client.SqlDb.UpdateOneID(sqlDbID)
	switch kind {
	case JobDBElements:
		u.SetDbElementsStatus(sqldb.DbElementsStatusRUNNING).
			SetDbElementsTaskID(taskID).
			SetDbElementsLog("").
			SetDbElementsStartTime(now).
			ClearDbElementsEndTime()
	case JobTableComment:
		u.SetTableCommentStatus(sqldb.TableCommentStatusRUNNING).
			SetTableCommentTaskID(taskID).
			SetTableCommentLog("").
			SetTableCommentStartTime(now).
			ClearTableCommentEndTime()
	case JobColumnComment:
		u.SetColumnCommentStatus(sqldb.ColumnCommentStatusRUNNING).
			SetColumnCommentTaskID(taskID).
			SetColumnCommentLog("").
			SetColumnCommentStartTime(now).
			ClearColumnCommentEndTime()
	}
	return u.Exec(ctx)
}

// markFinished flips the quintuple to COMPLETED or FAILED and records the
// diagnostic log.
func (r *Runner) markFinished(ctx context.Context, sqlDbID string, kind JobKind, jobLog string, failed bool) error {
	// Status writes must land even when the job context expired.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	now := time.Now()
	u := r.client.SqlDb.UpdateOneID(sqlDbID)
	switch kind {
	case JobDBElements:
		status := sqldb.DbElementsStatusCOMPLETED
		if failed {
			status = sqldb.DbElementsStatusFAILED
		}
		u.SetDbElementsStatus(status).
			SetDbElementsLog(jobLog).
			SetDbElementsEndTime(now)
	case JobTableComment:
		status := sqldb.TableCommentStatusCOMPLETED
		if failed {
			status = sqldb.TableCommentStatusFAILED
		}
		u.SetTableCommentStatus(status).
			SetTableCommentLog(jobLog).
			SetTableCommentEndTime(now)
	case JobColumnComment:
		status := sqldb.ColumnCommentStatusCOMPLETED
		if failed {
			status = sqldb.ColumnCommentStatusFAILED
		}
		u.SetColumnCommentStatus(status).
			SetColumnCommentLog(jobLog).
			SetColumnCommentEndTime(now)
	}
	return u.Exec(ctx)
}

// JobStatus is the quintuple read back by status endpoints.
type JobStatus struct {
	Status    string     `json:"status"`
	TaskID    string     `json:"task_id,omitempty"`
	Log       string     `json:"log,omitempty"`
	StartTime *time.Time `json:"start_time,omitempty"`
	EndTime   *time.Time `json:"end_time,omitempty"`
}

// StatusOf reads the quintuple of one job kind from a SqlDb row.
func StatusOf(db *ent.SqlDb, kind JobKind) JobStatus {
	switch kind {
	case JobTableComment:
		return JobStatus{
			Status:    string(db.TableCommentStatus),
			TaskID:    db.TableCommentTaskID,
			Log:       db.TableCommentLog,
			StartTime: db.TableCommentStartTime,
			EndTime:   db.TableCommentEndTime,
		}
	case JobColumnComment:
		return JobStatus{
			Status:    string(db.ColumnCommentStatus),
			TaskID:    db.ColumnCommentTaskID,
			Log:       db.ColumnCommentLog,
			StartTime: db.ColumnCommentStartTime,
			EndTime:   db.ColumnCommentEndTime,
		}
	default:
		return JobStatus{
			Status:    string(db.DbElementsStatus),
			TaskID:    db.DbElementsTaskID,
			Log:       db.DbElementsLog,
			StartTime: db.DbElementsStartTime,
			EndTime:   db.DbElementsEndTime,
		}
	}
}
