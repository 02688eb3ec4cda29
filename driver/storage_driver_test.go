package driver_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"image-qualifier/driver"
	"image-qualifier/resources"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/ghttp"
)

const objectACL = `<?xml version="1.0" encoding="UTF-8"?>
<AccessControlPolicy xmlns="http://s3.amazonaws.com/doc/2006-03-01/">
  <Owner><ID>owner-canonical-id</ID><DisplayName>owner</DisplayName></Owner>
  <AccessControlList>
    <Grant>
      <Grantee xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xsi:type="CanonicalUser"><ID>owner-canonical-id</ID><DisplayName>owner</DisplayName></Grantee>
      <Permission>FULL_CONTROL</Permission>
    </Grant>
    <Grant>
      <Grantee xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xsi:type="Group"><URI>http://acs.amazonaws.com/groups/global/AuthenticatedUsers</URI></Grantee>
      <Permission>READ</Permission>
    </Grant>
  </AccessControlList>
</AccessControlPolicy>`

var _ = Describe("SDKStorageDriver", func() {
	var (
		server        *ghttp.Server
		storageDriver *driver.SDKStorageDriver
	)

	BeforeEach(func() {
		server = ghttp.NewServer()
		storageDriver = driver.NewStorageDriver(GinkgoWriter, fakeRegionSession(server.URL()), driver.DefaultUploadRetries)
	})

	AfterEach(func() {
		server.Close()
	})

	Describe("GetContainer", func() {
		It("returns the bucket when it exists", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest(http.MethodHead, "/fake-bucket"),
				ghttp.RespondWith(http.StatusOK, nil),
			))

			container, err := storageDriver.GetContainer(context.Background(), "fake-bucket")
			Expect(err).ToNot(HaveOccurred())
			Expect(container).To(Equal(resources.Container{Name: "fake-bucket"}))
		})

		It("wraps ErrNotFound when the bucket does not exist", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest(http.MethodHead, "/fake-bucket"),
				ghttp.RespondWith(http.StatusNotFound, nil),
			))

			_, err := storageDriver.GetContainer(context.Background(), "fake-bucket")
			Expect(errors.Is(err, resources.ErrNotFound)).To(BeTrue())
		})

		It("does not treat a forbidden bucket as missing", func() {
			server.AppendHandlers(ghttp.RespondWith(http.StatusForbidden, nil))

			_, err := storageDriver.GetContainer(context.Background(), "fake-bucket")
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, resources.ErrNotFound)).To(BeFalse())
		})
	})

	Describe("CreateContainer", func() {
		It("creates the bucket in the session's region", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest(http.MethodPut, "/fake-bucket"),
				func(w http.ResponseWriter, r *http.Request) {
					body, err := io.ReadAll(r.Body)
					Expect(err).ToNot(HaveOccurred())
					Expect(string(body)).To(ContainSubstring("<LocationConstraint>us-east-2</LocationConstraint>"))
				},
				ghttp.RespondWith(http.StatusOK, nil),
			))

			container, err := storageDriver.CreateContainer(context.Background(), "fake-bucket")
			Expect(err).ToNot(HaveOccurred())
			Expect(container.Name).To(Equal("fake-bucket"))
		})
	})

	Describe("UploadStream", func() {
		It("streams the body into the object", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest(http.MethodPut, "/fake-bucket/fake-img-1.2-3.raw"),
				func(w http.ResponseWriter, r *http.Request) {
					body, err := io.ReadAll(r.Body)
					Expect(err).ToNot(HaveOccurred())
					Expect(string(body)).To(Equal("fake image contents"))
				},
				ghttp.RespondWith(http.StatusOK, nil),
			))

			object, err := storageDriver.UploadStream(context.Background(), resources.UploadDriverConfig{
				Container:  resources.Container{Name: "fake-bucket"},
				ObjectName: "fake-img-1.2-3.raw",
				SourceURL:  "https://example.com/fake-img-1.2-3.raw",
				Body:       strings.NewReader("fake image contents"),
				ChunkSize:  5 * 1024 * 1024,
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(object).To(Equal(resources.StagedObject{
				Container: "fake-bucket",
				Name:      "fake-img-1.2-3.raw",
				SourceURL: "https://example.com/fake-img-1.2-3.raw",
			}))
		})
	})

	Describe("SetPermission", func() {
		var putBody string

		BeforeEach(func() {
			putBody = ""
		})

		appendACLHandlers := func() {
			server.AppendHandlers(
				ghttp.CombineHandlers(
					ghttp.VerifyRequest(http.MethodGet, "/fake-bucket/fake-img.raw"),
					ghttp.RespondWith(http.StatusOK, objectACL, http.Header{"Content-Type": {"application/xml"}}),
				),
				ghttp.CombineHandlers(
					ghttp.VerifyRequest(http.MethodPut, "/fake-bucket/fake-img.raw"),
					func(w http.ResponseWriter, r *http.Request) {
						body, err := io.ReadAll(r.Body)
						Expect(err).ToNot(HaveOccurred())
						putBody = string(body)
					},
					ghttp.RespondWith(http.StatusOK, nil),
				),
			)
		}

		DescribeTable("adds a grant for the entity and keeps the existing grants",
			func(entity string, role string, expectedGrantee string, expectedPermission string) {
				appendACLHandlers()

				err := storageDriver.SetPermission(context.Background(), resources.PermissionDriverConfig{
					Container:  "fake-bucket",
					ObjectName: "fake-img.raw",
					Entity:     entity,
					Role:       role,
				})
				Expect(err).ToNot(HaveOccurred())

				Expect(putBody).To(ContainSubstring(expectedGrantee))
				Expect(putBody).To(ContainSubstring("<Permission>" + expectedPermission + "</Permission>"))
				Expect(putBody).To(ContainSubstring("<ID>owner-canonical-id</ID>"))
				Expect(putBody).To(ContainSubstring("<Permission>FULL_CONTROL</Permission>"))
			},
			Entry("all users", resources.AllUsersEntity, resources.ReaderRole,
				"<URI>http://acs.amazonaws.com/groups/global/AllUsers</URI>", "READ"),
			Entry("a user by email", "user-someone@example.com", resources.ReaderRole,
				"<EmailAddress>someone@example.com</EmailAddress>", "READ"),
			Entry("a user by canonical id", "user-0123abcd", resources.WriterRole,
				"<ID>0123abcd</ID>", "WRITE"),
			Entry("a canonical id", "id-0123abcd", resources.OwnerRole,
				"<ID>0123abcd</ID>", "FULL_CONTROL"),
			Entry("a group", "group-http://acs.amazonaws.com/groups/s3/LogDelivery", resources.ReaderRole,
				"<URI>http://acs.amazonaws.com/groups/s3/LogDelivery</URI>", "READ"),
		)

		It("leaves the ACL alone when the grant is already present", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest(http.MethodGet, "/fake-bucket/fake-img.raw"),
				ghttp.RespondWith(http.StatusOK, objectACL, http.Header{"Content-Type": {"application/xml"}}),
			))

			err := storageDriver.SetPermission(context.Background(), resources.PermissionDriverConfig{
				Container:  "fake-bucket",
				ObjectName: "fake-img.raw",
				Entity:     resources.AllAuthenticatedUsersEntity,
				Role:       resources.ReaderRole,
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(server.ReceivedRequests()).To(HaveLen(1))
		})

		It("rejects entities it cannot map without calling S3", func() {
			err := storageDriver.SetPermission(context.Background(), resources.PermissionDriverConfig{
				Container:  "fake-bucket",
				ObjectName: "fake-img.raw",
				Entity:     "domain-example.com",
				Role:       resources.ReaderRole,
			})
			Expect(err).To(MatchError("unsupported entity domain-example.com"))
			Expect(server.ReceivedRequests()).To(BeEmpty())
		})

		It("rejects unknown roles without calling S3", func() {
			err := storageDriver.SetPermission(context.Background(), resources.PermissionDriverConfig{
				Container:  "fake-bucket",
				ObjectName: "fake-img.raw",
				Entity:     resources.AllUsersEntity,
				Role:       "ADMIN",
			})
			Expect(err).To(MatchError(`unsupported role "ADMIN"`))
			Expect(server.ReceivedRequests()).To(BeEmpty())
		})
	})
})
