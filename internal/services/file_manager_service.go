package services

import (
	"io"

	"github.com/zeroonedevs/SheRisesv1/internal/enums"
	"github.com/zeroonedevs/SheRisesv1/internal/interfaces"
)

// FileManagerService produces the opaque public URLs the rest of the system
// carries around; nothing outside it knows where files actually live.
type FileManagerService struct {
	fileManager interfaces.FileManager
}

func NewFileManagerService(fileManager interfaces.FileManager) *FileManagerService {
	return &FileManagerService{
		fileManager: fileManager,
	}
}

func (fs *FileManagerService) UploadUserProfilePhoto(fileName string, file io.Reader, fileSize int64, contentType string) (string, error) {
	return fs.fileManager.UploadFile(fileName, file, fileSize, contentType, enums.FILE_BUCKET_USER_PROFILE)
}

func (fs *FileManagerService) UploadMessageAttachment(fileName string, file io.Reader, fileSize int64, contentType string) (string, error) {
	return fs.fileManager.UploadFile(fileName, file, fileSize, contentType, enums.FILE_BUCKET_MESSAGE_ATTACHMENTS)
}
