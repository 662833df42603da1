package stub

import (
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/docuscope/docuscope-cli/internal/client/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (s *Server) handleUpload(c *gin.Context) {
	u := c.MustGet("user").(user)

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "file field is required"})
		return
	}

	mt, ok := models.MediaTypeForPath(header.Filename)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Unsupported file type, accepted: " +
			strings.Join(models.AcceptedExtensions(), ", ")})
		return
	}

	// payload is read and discarded; the stub keeps metadata only
	f, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "cannot read upload"})
		return
	}
	f.Close()

	rec := models.DocumentRecord{
		ID:         uuid.NewString(),
		Name:       header.Filename,
		MediaType:  mt,
		SizeBytes:  header.Size,
		CreatedAt:  time.Now().UTC(),
		UploadedBy: u.name,
	}

	s.mu.Lock()
	s.docs = append([]models.DocumentRecord{rec}, s.docs...)
	s.mu.Unlock()

	s.logger.Info(c.Request.Context(), "document uploaded", "id", rec.ID, "name", rec.Name)
	c.JSON(http.StatusOK, rec)
}

func (s *Server) handleList(c *gin.Context) {
	s.mu.Lock()
	docs := slices.Clone(s.docs)
	s.mu.Unlock()

	if docs == nil {
		docs = []models.DocumentRecord{}
	}
	c.JSON(http.StatusOK, gin.H{"documents": docs})
}

func (s *Server) handleDelete(c *gin.Context) {
	id := c.Param("id")

	s.mu.Lock()
	i := slices.IndexFunc(s.docs, func(r models.DocumentRecord) bool { return r.ID == id })
	if i >= 0 {
		s.docs = slices.Delete(s.docs, i, i+1)
	}
	s.mu.Unlock()

	if i < 0 {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Document not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
