package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"classrecord-be/internal/dto"
	"classrecord-be/internal/entity"
	"classrecord-be/internal/pkg/logger"
	"classrecord-be/internal/repository/specification"
	"classrecord-be/internal/repository/unitofwork"
	"classrecord-be/pkg/backup"

	"github.com/google/uuid"
)

var ErrBackupNotFound = errors.New("backup file not found")

type IBackupService interface {
	Export(ctx context.Context, userId uuid.UUID) (*dto.ExportBackupResponse, error)
	Import(ctx context.Context, userId uuid.UUID, req *dto.ImportBackupRequest) (*dto.ImportBackupResponse, error)
	History(ctx context.Context, userId uuid.UUID) ([]*dto.BackupHistoryResponse, error)
	Status(ctx context.Context, userId uuid.UUID) (*dto.BackupStatusResponse, error)
}

type backupService struct {
	uowFactory      unitofwork.RepositoryFactory
	consumerService IConsumerService
	logger          logger.ILogger
	dbPath          string
	syncDirOverride string
}

func NewBackupService(
	uowFactory unitofwork.RepositoryFactory,
	consumerService IConsumerService,
	log logger.ILogger,
	dbPath, syncDirOverride string,
) IBackupService {
	return &backupService{
		uowFactory:      uowFactory,
		consumerService: consumerService,
		logger:          log,
		dbPath:          dbPath,
		syncDirOverride: syncDirOverride,
	}
}

// Export copies the live database file into the sync folder and
// records the copy. The pending-change counter starts over.
func (s *backupService) Export(ctx context.Context, userId uuid.UUID) (*dto.ExportBackupResponse, error) {
	dir, err := backup.DetectSyncDir(s.syncDirOverride)
	if err != nil {
		return nil, err
	}

	name := backup.FileName(time.Now())
	dst := filepath.Join(dir, name)

	size, err := backup.CopyFile(s.dbPath, dst)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	record := entity.BackupHistory{
		Id:        uuid.New(),
		UserId:    userId,
		FileName:  name,
		FilePath:  dst,
		SizeBytes: size,
		Direction: entity.BackupDirectionExport,
		CreatedAt: time.Now(),
	}
	if err := uow.BackupHistoryRepository().Create(ctx, &record); err != nil {
		return nil, err
	}

	s.consumerService.ResetPending(userId.String())
	s.logger.Info("backup", "database exported", map[string]interface{}{
		"file": dst,
		"size": size,
	})

	return &dto.ExportBackupResponse{
		FileName:  name,
		FilePath:  dst,
		SizeBytes: size,
	}, nil
}

// Import replaces the live database file with a previously exported
// copy. The file name is resolved inside the sync folder only, path
// separators are rejected so a request can't reach outside it.
func (s *backupService) Import(ctx context.Context, userId uuid.UUID, req *dto.ImportBackupRequest) (*dto.ImportBackupResponse, error) {
	if strings.ContainsAny(req.FileName, `/\`) {
		return nil, ErrBackupNotFound
	}

	dir, err := backup.DetectSyncDir(s.syncDirOverride)
	if err != nil {
		return nil, err
	}

	src := filepath.Join(dir, req.FileName)
	info, err := os.Stat(src)
	if err != nil {
		return nil, ErrBackupNotFound
	}

	if _, err := backup.CopyFile(src, s.dbPath); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	record := entity.BackupHistory{
		Id:        uuid.New(),
		UserId:    userId,
		FileName:  req.FileName,
		FilePath:  src,
		SizeBytes: info.Size(),
		Direction: entity.BackupDirectionImport,
		CreatedAt: time.Now(),
	}
	if err := uow.BackupHistoryRepository().Create(ctx, &record); err != nil {
		s.logger.Warn("backup", "import done but history write failed", map[string]interface{}{
			"file":  req.FileName,
			"error": err.Error(),
		})
	}

	s.logger.Info("backup", "database imported", map[string]interface{}{"file": src})
	return &dto.ImportBackupResponse{FileName: req.FileName}, nil
}

func (s *backupService) History(ctx context.Context, userId uuid.UUID) ([]*dto.BackupHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	records, err := uow.BackupHistoryRepository().FindAll(ctx,
		specification.OwnedByUser{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.BackupHistoryResponse, 0, len(records))
	for _, r := range records {
		out = append(out, &dto.BackupHistoryResponse{
			Id:        r.Id,
			FileName:  r.FileName,
			SizeBytes: r.SizeBytes,
			Direction: string(r.Direction),
			CreatedAt: r.CreatedAt,
		})
	}
	return out, nil
}

func (s *backupService) Status(ctx context.Context, userId uuid.UUID) (*dto.BackupStatusResponse, error) {
	dir, err := backup.DetectSyncDir(s.syncDirOverride)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	last, err := uow.BackupHistoryRepository().FindOne(ctx,
		specification.OwnedByUser{UserID: userId},
		specification.Filter("direction", string(entity.BackupDirectionExport)),
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	resp := &dto.BackupStatusResponse{
		SyncDir:        dir,
		PendingChanges: s.consumerService.PendingChanges(userId.String()),
	}
	if last != nil {
		t := last.CreatedAt
		resp.LastExportAt = &t
	}
	return resp, nil
}
