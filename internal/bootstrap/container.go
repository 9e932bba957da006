package bootstrap

import (
	"log"
	"os"

	"classrecord-be/internal/config"
	"classrecord-be/internal/controller"
	"classrecord-be/internal/pkg/logger"
	"classrecord-be/internal/pkg/mailer"
	"classrecord-be/internal/repository/memory"
	"classrecord-be/internal/repository/unitofwork"
	"classrecord-be/internal/service"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController     controller.IAuthController
	ClassController    controller.IClassController
	StudentController  controller.IStudentController
	GradeController    controller.IGradeController
	NoteController     controller.INoteController
	CalendarController controller.ICalendarController
	ChatbotController  controller.IChatbotController
	BackupController   controller.IBackupController

	// Background services, exposed for main.go to run
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	publisherService := service.NewPublisherService(pubSub, sysLogger)
	consumerService := service.NewConsumerService(pubSub, sysLogger)

	// Conversation sessions live in memory only.
	sessionRepo := memory.NewSessionRepository()

	// Services
	authService := service.NewAuthService(uowFactory, emailService, sessionRepo, sysLogger, cfg.Auth.TokenTTLHours)
	classService := service.NewClassService(uowFactory, publisherService)
	studentService := service.NewStudentService(uowFactory, publisherService)
	gradeService := service.NewGradeService(uowFactory, publisherService)
	noteService := service.NewNoteService(uowFactory, publisherService)
	calendarService := service.NewCalendarService(uowFactory, publisherService, sysLogger)

	engineLog := log.New(os.Stdout, "", log.LstdFlags)
	chatbotService := service.NewChatbotService(
		sessionRepo,
		noteService,
		calendarService,
		classService,
		gradeService,
		engineLog,
	)

	backupService := service.NewBackupService(
		uowFactory,
		consumerService,
		sysLogger,
		cfg.Database.Path,
		cfg.Backup.SyncDir,
	)

	return &Container{
		AuthController:     controller.NewAuthController(authService),
		ClassController:    controller.NewClassController(classService),
		StudentController:  controller.NewStudentController(studentService),
		GradeController:    controller.NewGradeController(gradeService),
		NoteController:     controller.NewNoteController(noteService),
		CalendarController: controller.NewCalendarController(calendarService),
		ChatbotController:  controller.NewChatbotController(chatbotService),
		BackupController:   controller.NewBackupController(backupService),

		ConsumerService: consumerService,

		Logger: sysLogger,
	}
}
